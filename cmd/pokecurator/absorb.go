package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"pokecurator/internal/absorb"
	"pokecurator/internal/pokedex"
)

var absorbCmd = &cobra.Command{
	Use:   "absorb [directory...]",
	Short: "Discover tags worth absorbing",
	Long: `Scan the tag files of recognized dataset folders and suggest tags
that appear in a large share of files. Accepted tags are added to the
tags_to_absorb list in the configuration file; future runs remove them
from every tag file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		minShare, _ := cmd.Flags().GetFloat64("min-share")
		acceptAll, _ := cmd.Flags().GetBool("yes")

		rep := newReporter()
		cfg, err := loadConfig(rep)
		if err != nil {
			return err
		}

		dirs := args
		if len(dirs) == 0 {
			dirs = cfg.DatasetDirectories
		}
		if len(dirs) == 0 {
			return errors.New("no dataset directories given and none configured")
		}

		result, err := absorb.DiscoverCandidates(dirs, pokedex.New(), cfg, minShare)
		if err != nil {
			return err
		}
		rep.Verbose("Scanned %d folder(s), %d tag file(s)", result.FoldersScanned, result.FilesAnalyzed)

		if len(result.Candidates) == 0 {
			rep.Info("No candidate tags found.")
			return nil
		}

		var accepted []string
		switch {
		case acceptAll:
			for _, c := range result.Candidates {
				accepted = append(accepted, c.Tag)
			}
		case !absorb.IsInteractive():
			rep.Info("%d candidate tag(s) (re-run with --yes to absorb them):", len(result.Candidates))
			for _, c := range result.Candidates {
				rep.Info("  %s (%d of %d files, %.0f%%)", c.Tag, c.Files, c.Total, c.Share*100)
			}
			return nil
		default:
			prompter := absorb.NewPrompter(os.Stdin, os.Stdout)
			accepted, err = prompter.Review(result.Candidates)
			if err != nil {
				return err
			}
		}

		if len(accepted) == 0 {
			rep.Info("No tags absorbed.")
			return nil
		}

		added, err := absorb.Apply(cfg, configPath, accepted)
		if err != nil {
			return err
		}
		rep.Success("Absorbed %d tag(s) into %s", added, configPath)
		return nil
	},
}

func init() {
	absorbCmd.Flags().Float64("min-share", 0.5, "minimum share of tag files a candidate must appear in")
	absorbCmd.Flags().BoolP("yes", "y", false, "absorb all candidates without prompting")
	rootCmd.AddCommand(absorbCmd)
}
