package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sysreport/internal/config"
	"sysreport/internal/logger"
	"sysreport/internal/report"
	"sysreport/internal/retention"
	"sysreport/internal/storage/sqlite"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sysreport",
	Short: "Generate a system health report and prune expired ones",
	Long: `sysreport samples host health (CPU, memory, disk, processes, network,
failed services), writes one timestamped report into the log directory
and removes reports older than the retention window. Run it from cron.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCycle(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the settings file")
}

func runCycle(ctx context.Context) error {
	cfg := config.Load(configPath)
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	fmt.Printf("%s generating system health report\n", green("[INFO]"))

	rep := report.NewBuilder(cfg, log).Build(ctx)

	path, err := report.NewWriter(cfg.LogDir).Write(rep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", red("[FATAL]"), err)
		return err
	}
	fmt.Printf("%s report written: %s\n", green("[INFO]"), path)

	removed := sweep(ctx, cfg, log)
	indexRun(ctx, cfg, log, rep, path, removed)

	return nil
}

// sweep prunes expired reports. Sweep problems never fail the run, the
// report is already on disk.
func sweep(ctx context.Context, cfg *config.Config, log logger.Logger) []string {
	removed, err := retention.NewSweeper(cfg.LogDir, cfg.RetentionDays, log).Sweep()
	if err != nil {
		fmt.Printf("%s sweep failed: %v\n", yellow("[WARN]"), err)
		return nil
	}
	if len(removed) > 0 {
		fmt.Printf("%s removed %d expired report(s)\n", green("[INFO]"), len(removed))
	}
	return removed
}

// indexRun records the run in the sqlite index, if enabled. The index
// is advisory, so every failure here is a warning at most.
func indexRun(ctx context.Context, cfg *config.Config, log logger.Logger, rep *report.Report, path string, removed []string) {
	if !cfg.ReportIndex {
		return
	}

	db, err := sqlite.NewDB(filepath.Join(cfg.LogDir, "index.db"), log)
	if err != nil {
		log.Warn("report index unavailable", "error", err)
		return
	}
	defer db.Close()

	repo := sqlite.NewReportRepository(db)

	size := int64(0)
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	if err := repo.Record(ctx, sqlite.ReportRecord{
		Filename:  filepath.Base(path),
		CreatedAt: rep.GeneratedAt,
		SizeBytes: size,
		Sections:  len(rep.Sections),
	}); err != nil {
		log.Warn("failed to index report", "error", err)
	}

	if err := repo.Forget(ctx, removed); err != nil {
		log.Warn("failed to prune report index", "error", err)
	}
}
