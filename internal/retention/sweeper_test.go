package retention

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysreport/internal/logger"
	"sysreport/internal/report"
)

/* ---------------- Fake directory ---------------- */

type fakeDir struct {
	files     []FileInfo
	removed   []string
	removeErr map[string]error
	listErr   error
}

func (f *fakeDir) List(dir string) ([]FileInfo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.files, nil
}

func (f *fakeDir) Remove(path string) error {
	name := filepath.Base(path)
	if err, ok := f.removeErr[name]; ok {
		return err
	}
	f.removed = append(f.removed, name)
	f.files = deleteByName(f.files, name)
	return nil
}

func deleteByName(files []FileInfo, name string) []FileInfo {
	out := make([]FileInfo, 0, len(files))
	for _, f := range files {
		if f.Name != name {
			out = append(out, f)
		}
	}
	return out
}

func testLogger() logger.Logger {
	return logger.NewWithOutput(&strings.Builder{}, "error", "text")
}

func testSweeper(retention int, fs Dir, now time.Time) *Sweeper {
	return &Sweeper{
		dir:       "/logs",
		retention: retention,
		fs:        fs,
		now:       func() time.Time { return now },
		log:       testLogger(),
	}
}

func reportAged(now time.Time, days int) FileInfo {
	mtime := now.Add(-time.Duration(days) * 24 * time.Hour)
	return FileInfo{Name: report.Filename(mtime), ModTime: mtime}
}

/* ---------------- Tests ---------------- */

func TestSweep_RemovesOnlyExpiredReports(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	fs := &fakeDir{files: []FileInfo{
		reportAged(now, 1),
		reportAged(now, 2),
		reportAged(now, 4),
		reportAged(now, 10),
	}}
	survivors := []string{fs.files[0].Name, fs.files[1].Name}

	removed, err := testSweeper(3, fs, now).Sweep()
	require.NoError(t, err)

	assert.Len(t, removed, 2)
	assert.Len(t, fs.files, 2)
	for i, f := range fs.files {
		assert.Equal(t, survivors[i], f.Name)
	}
}

func TestSweep_ZeroRetentionIsNoOp(t *testing.T) {
	now := time.Now()
	fs := &fakeDir{files: []FileInfo{reportAged(now, 100)}}

	removed, err := testSweeper(0, fs, now).Sweep()
	require.NoError(t, err)

	assert.Empty(t, removed)
	assert.Len(t, fs.files, 1)
}

func TestSweep_NegativeRetentionIsNoOp(t *testing.T) {
	now := time.Now()
	fs := &fakeDir{files: []FileInfo{reportAged(now, 100)}}

	removed, err := testSweeper(-1, fs, now).Sweep()
	require.NoError(t, err)

	assert.Empty(t, removed)
}

func TestSweep_IgnoresUnrelatedFiles(t *testing.T) {
	now := time.Now()
	old := now.Add(-30 * 24 * time.Hour)

	fs := &fakeDir{files: []FileInfo{
		{Name: "index.db", ModTime: old},
		{Name: "notes.txt", ModTime: old},
		reportAged(now, 30),
	}}

	removed, err := testSweeper(7, fs, now).Sweep()
	require.NoError(t, err)

	assert.Len(t, removed, 1)
	assert.True(t, report.MatchesName(removed[0]))
	assert.Len(t, fs.files, 2)
}

func TestSweep_SkipsFilesItCannotRemove(t *testing.T) {
	now := time.Now()

	stubborn := reportAged(now, 20)
	fs := &fakeDir{
		files:     []FileInfo{stubborn, reportAged(now, 10)},
		removeErr: map[string]error{stubborn.Name: errors.New("permission denied")},
	}

	removed, err := testSweeper(7, fs, now).Sweep()
	require.NoError(t, err, "one stuck file must not abort the sweep")

	assert.Len(t, removed, 1)
	assert.NotContains(t, removed, stubborn.Name)
}

func TestSweep_Idempotent(t *testing.T) {
	now := time.Now()
	fs := &fakeDir{files: []FileInfo{
		reportAged(now, 1),
		reportAged(now, 10),
	}}

	s := testSweeper(3, fs, now)

	first, err := s.Sweep()
	require.NoError(t, err)
	second, err := s.Sweep()
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Empty(t, second)
	assert.Len(t, fs.files, 1)
}

func TestSweep_ListFailure(t *testing.T) {
	fs := &fakeDir{listErr: errors.New("no such directory")}

	_, err := testSweeper(3, fs, time.Now()).Sweep()
	assert.Error(t, err)
}

func TestSweep_OnRealFilesystem(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	oldFile := filepath.Join(dir, report.Filename(now.Add(-10*24*time.Hour)))
	newFile := filepath.Join(dir, report.Filename(now))

	for _, path := range []string{oldFile, newFile} {
		require.NoError(t, os.WriteFile(path, []byte("report\n"), 0o644))
	}
	require.NoError(t, os.Chtimes(oldFile, now, now.Add(-10*24*time.Hour)))

	removed, err := NewSweeper(dir, 7, testLogger()).Sweep()
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Base(oldFile)}, removed)

	_, err = os.Stat(newFile)
	assert.NoError(t, err)
	_, err = os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err))
}
