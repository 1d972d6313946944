// Package retention prunes report files older than the configured window.
package retention

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sysreport/internal/logger"
	"sysreport/internal/report"
)

type FileInfo struct {
	Name    string
	ModTime time.Time
}

// Dir is the minimal filesystem contract required by the sweeper.
// It keeps the sweep testable without touching the real filesystem.
type Dir interface {
	List(dir string) ([]FileInfo, error)
	Remove(path string) error
}

type osDir struct{}

func (osDir) List(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{Name: e.Name(), ModTime: info.ModTime()})
	}
	return files, nil
}

func (osDir) Remove(path string) error {
	return os.Remove(path)
}

type Sweeper struct {
	dir       string
	retention int
	fs        Dir
	now       func() time.Time
	log       logger.Logger
}

func NewSweeper(dir string, retentionDays int, log logger.Logger) *Sweeper {
	return &Sweeper{
		dir:       dir,
		retention: retentionDays,
		fs:        osDir{},
		now:       time.Now,
		log:       log,
	}
}

// Sweep deletes report files whose age exceeds the retention window and
// returns the names it removed. A retention of zero or less disables
// the sweep entirely. A file that cannot be removed is logged and
// skipped, never aborting the rest of the sweep.
func (s *Sweeper) Sweep() ([]string, error) {
	if s.retention <= 0 {
		s.log.Debug("retention disabled, skipping sweep")
		return nil, nil
	}

	files, err := s.fs.List(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list log directory: %w", err)
	}

	cutoff := s.now().Add(-time.Duration(s.retention) * 24 * time.Hour)

	var removed []string
	for _, f := range files {
		if !report.MatchesName(f.Name) {
			continue
		}
		if !f.ModTime.Before(cutoff) {
			continue
		}

		if err := s.fs.Remove(filepath.Join(s.dir, f.Name)); err != nil {
			s.log.Warn("failed to remove expired report", "file", f.Name, "error", err)
			continue
		}

		s.log.Info("removed expired report", "file", f.Name, "age", s.now().Sub(f.ModTime))
		removed = append(removed, f.Name)
	}

	return removed, nil
}
