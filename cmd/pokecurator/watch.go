package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pokecurator/internal/orchestrator"
	"pokecurator/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory...]",
	Short: "Watch dataset directories and curate on change",
	Long: `Monitor the given dataset directories (or the configured ones) and
re-run curation whenever folders or tag files change. Runs until
interrupted with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := newReporter()
		cfg, err := loadConfig(rep)
		if err != nil {
			return err
		}
		o := newOrchestrator(cfg, rep)

		dirs := args
		if len(dirs) == 0 {
			dirs = cfg.DatasetDirectories
		}
		if len(dirs) == 0 {
			return errors.New("no dataset directories given and none configured")
		}

		settings := watcher.DefaultSettings()
		if cfg.Watch != nil {
			if cfg.Watch.DebounceSeconds > 0 {
				settings.Debounce = time.Duration(cfg.Watch.DebounceSeconds) * time.Second
			}
			if cfg.Watch.StableThresholdMs > 0 {
				settings.StableThreshold = time.Duration(cfg.Watch.StableThresholdMs) * time.Millisecond
			}
			if len(cfg.Watch.IgnorePatterns) > 0 {
				settings.IgnorePatterns = cfg.Watch.IgnorePatterns
			}
		}

		w := watcher.New(settings, func(dir string) {
			summary, err := o.Run([]string{dir}, orchestrator.Options{})
			if err != nil {
				rep.Error("%v", err)
				return
			}
			rep.Info("%s", summary.Format())
		})

		if err := w.Start(dirs); err != nil {
			return err
		}
		rep.Info("Watching %d directory(ies). Press Ctrl-C to stop.", len(dirs))

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		summary := w.Stop()
		rep.Info("Watch session: %d run(s) triggered, %d event(s) skipped, %s elapsed",
			summary.Triggers, summary.EventsSkipped, summary.Duration.Round(time.Second))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
