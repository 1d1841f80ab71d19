package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pokecurator/internal/config"
	"pokecurator/internal/orchestrator"
	"pokecurator/internal/pokedex"
	"pokecurator/internal/report"
)

var (
	configPath  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "pokecurator",
	Short: "Curate Pokemon image datasets for LoRA training",
	Long: `pokecurator standardizes Pokemon image dataset folders: folder names
are normalized to <Name>Pokedex_IXL, tag files get a per-species trigger
tag prepended, and noisy or redundant tags are cleaned up.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.json", "configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
}

// loadConfig reads the configuration file, treating a missing file as an
// empty configuration.
func loadConfig(rep *report.Reporter) (*config.Configuration, error) {
	cfg, existed, err := config.LoadOrCreate(configPath)
	if err != nil {
		return nil, err
	}
	if !existed {
		rep.Warn("configuration file %s not found, no tags will be absorbed", configPath)
	}
	return cfg, nil
}

func newReporter() *report.Reporter {
	c := report.DefaultConfig()
	c.Verbose = verboseFlag
	return report.New(c)
}

func newOrchestrator(cfg *config.Configuration, rep *report.Reporter) *orchestrator.Orchestrator {
	return orchestrator.New(cfg, pokedex.New(), rep)
}
