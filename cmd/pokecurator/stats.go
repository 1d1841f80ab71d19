package main

import (
	"github.com/spf13/cobra"

	"pokecurator/internal/audit"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the audit log",
	Long:  `Aggregate the audit log into counts of runs, renames, rewrites and rejections.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := newReporter()
		cfg, err := loadConfig(rep)
		if err != nil {
			return err
		}

		auditCfg := audit.DefaultConfig()
		if cfg.Audit != nil {
			auditCfg = *cfg.Audit
		}

		events, err := audit.ReadDir(auditCfg.LogDirectory)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			rep.Info("No audit events recorded yet.")
			return nil
		}

		rep.Info("%s", audit.Compute(events).Format())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
