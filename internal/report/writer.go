package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	filePrefix = "system_report_"
	fileSuffix = ".log"
	nameLayout = "2006-01-02_15-04-05"
)

// Filename derives the report file name from its generation timestamp.
// The layout sorts lexicographically in creation order.
func Filename(t time.Time) string {
	return filePrefix + t.Format(nameLayout) + fileSuffix
}

// MatchesName reports whether name follows the report naming convention.
// The sweeper uses it to leave unrelated files alone.
func MatchesName(name string) bool {
	return strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileSuffix)
}

// Writer persists rendered reports into the log directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write renders the report and persists it atomically, returning the
// final path. Any failure here is the one fatal error class: without a
// report file the run has nothing to show.
func (w *Writer) Write(r *Report) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create log directory %s: %w", w.dir, err)
	}

	name := Filename(r.GeneratedAt)
	path := filepath.Join(w.dir, name)

	tmp, err := os.CreateTemp(w.dir, name+".tmp-")
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}

	if _, err := tmp.WriteString(r.Render()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to flush report: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to finalize report: %w", err)
	}

	return path, nil
}
