// Package collector defines the contract every metric collector implements.
package collector

import (
	"context"
	"fmt"
)

// Collector queries one OS subsystem and renders it as a report section body.
type Collector interface {
	// Name returns the collector's identifier, used in logs.
	Name() string

	// Title returns the section header the collector's output appears under.
	Title() string

	// Collect gathers the metric data and formats it as text.
	Collect(ctx context.Context) (string, error)
}

// Bytes renders a byte count in human-readable binary units.
func Bytes(n uint64) string {
	const unit = 1024

	if n < unit {
		return fmt.Sprintf("%dB", n)
	}

	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f%s", float64(n)/float64(div), []string{"Ki", "Mi", "Gi", "Ti", "Pi"}[exp])
}
