package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pokecurator/internal/orchestrator"
)

var runCmd = &cobra.Command{
	Use:   "run [directory...]",
	Short: "Curate dataset folders",
	Long: `Scan the given dataset directories (or the configured ones), rename
recognized folders to their canonical form and rewrite their tag files.
Folders that cannot be classified are reported and left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		reportPath, _ := cmd.Flags().GetString("report")

		rep := newReporter()
		cfg, err := loadConfig(rep)
		if err != nil {
			return err
		}
		o := newOrchestrator(cfg, rep)

		summary, err := o.Run(args, orchestrator.Options{
			DryRun:     dryRun,
			Progress:   term.IsTerminal(int(os.Stderr.Fd())),
			ReportPath: reportPath,
		})
		if err != nil {
			return err
		}

		for _, scanErr := range summary.ScanErrors {
			rep.Warn("%v", scanErr)
		}
		rep.Info("%s", summary.Format())

		if summary.HasErrors() {
			return fmt.Errorf("completed with %d file error(s) and %d scan error(s)",
				summary.FileErrors, len(summary.ScanErrors))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Bool("dry-run", false, "show what would happen without touching anything")
	runCmd.Flags().StringP("report", "r", "", "write the unprocessed-folder report to this file")
	rootCmd.AddCommand(runCmd)
}
