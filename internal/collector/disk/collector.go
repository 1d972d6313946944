// Package disk
package disk

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"

	"sysreport/internal/collector"
	"sysreport/internal/logger"
)

type Collector struct {
	log logger.Logger
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log}
}

func (c *Collector) Name() string  { return "disk" }
func (c *Collector) Title() string { return "Disk Usage" }

func (c *Collector) Collect(ctx context.Context) (string, error) {
	// physical devices only, pseudo filesystems are noise here
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return "", fmt.Errorf("failed to list partitions: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-24s %8s %8s %8s %5s %s\n", "Filesystem", "Size", "Used", "Avail", "Use%", "Mounted on")

	for _, part := range parts {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			c.log.Debug("failed to stat mountpoint", "mountpoint", part.Mountpoint, "error", err)
			continue
		}

		fmt.Fprintf(&b, "%-24s %8s %8s %8s %4.0f%% %s\n",
			part.Device,
			collector.Bytes(usage.Total),
			collector.Bytes(usage.Used),
			collector.Bytes(usage.Free),
			usage.UsedPercent,
			part.Mountpoint,
		)
	}

	return b.String(), nil
}
