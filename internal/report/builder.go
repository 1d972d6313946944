package report

import (
	"context"
	"fmt"
	"time"

	"sysreport/internal/collector"
	"sysreport/internal/collector/cpu"
	"sysreport/internal/collector/disk"
	"sysreport/internal/collector/memory"
	"sysreport/internal/collector/network"
	"sysreport/internal/collector/procmem"
	"sysreport/internal/collector/services"
	"sysreport/internal/collector/system"
	"sysreport/internal/config"
	"sysreport/internal/logger"
)

// Builder runs the collectors in their fixed report order.
type Builder struct {
	collectors []collector.Collector
	log        logger.Logger
	now        func() time.Time
}

func NewBuilder(cfg *config.Config, log logger.Logger) *Builder {
	return &Builder{
		collectors: []collector.Collector{
			system.NewCollector(),
			cpu.NewCollector(cfg.TopProcesses, log),
			memory.NewCollector(log),
			disk.NewCollector(log),
			procmem.NewCollector(cfg.TopProcesses),
			network.NewCollector(log),
			services.NewCollector(),
		},
		log: log,
		now: time.Now,
	}
}

// Build collects every section. A failing collector degrades to an
// explicit placeholder body and never aborts the run.
func (b *Builder) Build(ctx context.Context) *Report {
	r := &Report{GeneratedAt: b.now()}

	for _, c := range b.collectors {
		body, err := c.Collect(ctx)
		if err != nil {
			b.log.Warn("collector degraded", "name", c.Name(), "error", err)
			body = fmt.Sprintf("[unavailable: %v]\n", err)
		}
		r.Sections = append(r.Sections, Section{Title: c.Title(), Body: body})
	}

	return r
}
