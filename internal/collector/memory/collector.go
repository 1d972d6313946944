// Package memory
package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/mem"

	"sysreport/internal/collector"
	"sysreport/internal/logger"
)

type Collector struct {
	log logger.Logger
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log}
}

func (c *Collector) Name() string  { return "memory" }
func (c *Collector) Title() string { return "Memory" }

func (c *Collector) Collect(ctx context.Context) (string, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read memory stats: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-11s %10s %10s %10s %10s\n", "", "total", "used", "free", "available")
	fmt.Fprintf(&b, "%-11s %10s %10s %10s %10s\n", "Mem:",
		collector.Bytes(vm.Total),
		collector.Bytes(vm.Used),
		collector.Bytes(vm.Free),
		collector.Bytes(vm.Available),
	)

	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		c.log.Warn("failed to read swap stats", "error", err)
		return b.String(), nil
	}
	fmt.Fprintf(&b, "%-11s %10s %10s %10s\n", "Swap:",
		collector.Bytes(sw.Total),
		collector.Bytes(sw.Used),
		collector.Bytes(sw.Free),
	)

	return b.String(), nil
}
