package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sysreport/internal/config"
	"sysreport/internal/logger"
	"sysreport/internal/retention"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Prune expired reports without generating a new one",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(configPath)
		log := logger.New(cfg.LogLevel, cfg.LogFormat)

		removed, err := retention.NewSweeper(cfg.LogDir, cfg.RetentionDays, log).Sweep()
		if err != nil {
			fmt.Printf("%s sweep failed: %v\n", yellow("[WARN]"), err)
			return nil
		}

		fmt.Printf("%s removed %d expired report(s)\n", green("[INFO]"), len(removed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
