package main

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [directory...]",
	Short: "Show pending work without changing anything",
	Long: `Classify every dataset folder and show whether it is already
canonical, would be renamed, or would be rejected by a run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := newReporter()
		cfg, err := loadConfig(rep)
		if err != nil {
			return err
		}
		o := newOrchestrator(cfg, rep)

		result, err := o.Status(args)
		if err != nil {
			return err
		}
		rep.Info("%s", result.Format())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
