// Package system
package system

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

type Collector struct{}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Name() string  { return "system" }
func (c *Collector) Title() string { return "System Information" }

func (c *Collector) Collect(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to query host info: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hostname: %s\n", info.Hostname)
	fmt.Fprintf(&b, "Uptime:   %s\n", formatUptime(info.Uptime))
	fmt.Fprintf(&b, "Kernel:   %s\n", info.KernelVersion)
	fmt.Fprintf(&b, "OS:       %s\n", osPrettyName(info))

	return b.String(), nil
}

func osPrettyName(info *host.InfoStat) string {
	if info.Platform == "" {
		return "Unknown OS"
	}
	if info.PlatformVersion == "" {
		return info.Platform
	}
	return info.Platform + " " + info.PlatformVersion
}

func formatUptime(seconds uint64) string {
	d := time.Duration(seconds) * time.Second

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	parts := []string{}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", minutes))

	return "up " + strings.Join(parts, " ")
}
