// Package cpu
package cpu

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/load"

	"sysreport/internal/collector/proc"
	"sysreport/internal/logger"
)

type Collector struct {
	topN int
	log  logger.Logger
}

func NewCollector(topN int, log logger.Logger) *Collector {
	return &Collector{topN: topN, log: log}
}

func (c *Collector) Name() string  { return "cpu" }
func (c *Collector) Title() string { return "CPU & Load" }

func (c *Collector) Collect(ctx context.Context) (string, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read load averages: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Load average (1, 5, 15 min): %.2f %.2f %.2f\n\n", avg.Load1, avg.Load5, avg.Load15)
	fmt.Fprintf(&b, "Top %d processes by CPU:\n", c.topN)

	samples, err := proc.Snapshot(ctx)
	if err != nil {
		c.log.Warn("failed to sample processes", "error", err)
		fmt.Fprintf(&b, "[unavailable: %v]\n", err)
		return b.String(), nil
	}

	b.WriteString(proc.Table(proc.TopByCPU(samples, c.topN)))
	return b.String(), nil
}
