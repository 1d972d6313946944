// Package report builds, renders and persists system health reports.
package report

import (
	"fmt"
	"strings"
	"time"
)

type Section struct {
	Title string
	Body  string
}

// Report is one generated artifact: an ordered set of sections plus the
// generation timestamp. It is never mutated after being written.
type Report struct {
	GeneratedAt time.Time
	Sections    []Section
}

func (r *Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "System Health Report - %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	b.WriteString("----------------------------------------\n")

	for _, s := range r.Sections {
		fmt.Fprintf(&b, "\n==================== %s ====================\n\n", s.Title)
		b.WriteString(s.Body)
	}

	return b.String()
}
