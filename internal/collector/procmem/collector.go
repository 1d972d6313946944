// Package procmem
package procmem

import (
	"context"
	"fmt"
	"strings"

	"sysreport/internal/collector/proc"
)

type Collector struct {
	topN int
}

func NewCollector(topN int) *Collector {
	return &Collector{topN: topN}
}

func (c *Collector) Name() string  { return "procmem" }
func (c *Collector) Title() string { return "Top Processes by Memory" }

func (c *Collector) Collect(ctx context.Context) (string, error) {
	samples, err := proc.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Top %d processes by memory:\n", c.topN)
	b.WriteString(proc.Table(proc.TopByMemory(samples, c.topN)))

	return b.String(), nil
}
