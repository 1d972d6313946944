package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysreport/internal/logger"
)

func testRepo(t *testing.T) *ReportRepository {
	t.Helper()

	log := logger.NewWithOutput(&strings.Builder{}, "error", "text")
	db, err := NewDB(filepath.Join(t.TempDir(), "index.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewReportRepository(db)
}

func TestReportRepository_RecordAndList(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	createdAt := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Record(ctx, ReportRecord{
		Filename:  "system_report_2026-08-26_09-00-00.log",
		CreatedAt: createdAt,
		SizeBytes: 2048,
		Sections:  7,
	}))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "system_report_2026-08-26_09-00-00.log", records[0].Filename)
	assert.Equal(t, createdAt, records[0].CreatedAt)
	assert.Equal(t, int64(2048), records[0].SizeBytes)
	assert.Equal(t, 7, records[0].Sections)
}

func TestReportRepository_DuplicateFilenameRejected(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	rec := ReportRecord{Filename: "system_report_2026-08-26_09-00-00.log", CreatedAt: time.Now()}
	require.NoError(t, repo.Record(ctx, rec))

	assert.Error(t, repo.Record(ctx, rec))
}

func TestReportRepository_Forget(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, name := range []string{
		"system_report_2026-08-20_09-00-00.log",
		"system_report_2026-08-26_09-00-00.log",
	} {
		require.NoError(t, repo.Record(ctx, ReportRecord{Filename: name, CreatedAt: time.Now()}))
	}

	require.NoError(t, repo.Forget(ctx, []string{"system_report_2026-08-20_09-00-00.log"}))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "system_report_2026-08-26_09-00-00.log", records[0].Filename)
}

func TestReportRepository_ForgetUnknownIsFine(t *testing.T) {
	repo := testRepo(t)

	assert.NoError(t, repo.Forget(context.Background(), []string{"never-indexed.log"}))
}
