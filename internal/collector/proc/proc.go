// Package proc samples running processes and ranks them by resource usage.
package proc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

type Sample struct {
	PID        int32
	Name       string
	CPUPercent float64
	MemPercent float32
	MemRSS     uint64
}

// Snapshot samples every visible process. Processes that disappear or
// refuse inspection mid-walk are skipped, not errors.
func Snapshot(ctx context.Context) ([]Sample, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	samples := make([]Sample, 0, len(procs))
	for _, p := range procs {
		s := Sample{PID: p.Pid}

		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		s.Name = name

		if cpu, err := p.CPUPercentWithContext(ctx); err == nil {
			s.CPUPercent = cpu
		}
		if memPct, err := p.MemoryPercentWithContext(ctx); err == nil {
			s.MemPercent = memPct
		}
		if info, err := p.MemoryInfoWithContext(ctx); err == nil && info != nil {
			s.MemRSS = info.RSS
		}

		samples = append(samples, s)
	}

	return samples, nil
}

// TopByCPU returns at most n samples ordered by CPU usage descending,
// ties broken by ascending PID.
func TopByCPU(samples []Sample, n int) []Sample {
	return top(samples, n, func(a, b Sample) bool {
		if a.CPUPercent != b.CPUPercent {
			return a.CPUPercent > b.CPUPercent
		}
		return a.PID < b.PID
	})
}

// TopByMemory returns at most n samples ordered by resident memory
// descending, ties broken by ascending PID.
func TopByMemory(samples []Sample, n int) []Sample {
	return top(samples, n, func(a, b Sample) bool {
		if a.MemRSS != b.MemRSS {
			return a.MemRSS > b.MemRSS
		}
		return a.PID < b.PID
	})
}

func top(samples []Sample, n int, less func(a, b Sample) bool) []Sample {
	ranked := make([]Sample, len(samples))
	copy(ranked, samples)

	sort.Slice(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Table renders samples as the fixed-width PID/COMMAND/%CPU/%MEM listing.
func Table(samples []Sample) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%7s %-24s %6s %6s\n", "PID", "COMMAND", "%CPU", "%MEM")
	for _, s := range samples {
		name := s.Name
		if len(name) > 24 {
			name = name[:24]
		}
		fmt.Fprintf(&b, "%7d %-24s %6.1f %6.1f\n", s.PID, name, s.CPUPercent, s.MemPercent)
	}

	return b.String()
}
