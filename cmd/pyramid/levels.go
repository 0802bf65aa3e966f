package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pyramid/internal/core"
	"github.com/vovakirdan/pyramid/internal/pyramid"
)

var flagRuns int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the levels generated for a seed",
	Long: `Generate the five levels of a run and print where everything lands.
The same seed always produces the same levels, so this is a quick way to
inspect a seed before playing it with --seed.

Examples:
  pyramid levels --seed 42
  pyramid levels --seed 42 --runs 3`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of consecutive runs to generate")
}

func runLevels(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "pyramid")
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	seed := core.ResolveSeed(flagSeed)
	gen := pyramid.NewGenerator(seed, cfg.Generator.MaxAttempts, logger)
	bounds := pyramid.DefaultBounds()

	fmt.Printf("Seed %d\n", seed)
	for run := 1; run <= flagRuns; run++ {
		fmt.Println()
		if flagRuns > 1 {
			fmt.Printf("Run %d\n", run)
		}
		fmt.Printf("  %-5s  %-6s  %-7s  %s\n", "Level", "Gem", "Portal", "Hazards")
		fmt.Printf("  %-5s  %-6s  %-7s  %s\n", "-----", "---", "------", "-------")

		for level := 1; level <= pyramid.FinalLevel; level++ {
			layout := gen.Generate(level, bounds)
			hazards := make([]string, len(layout.Hazards))
			for i, h := range layout.Hazards {
				hazards[i] = fmt.Sprintf("%s@%d", h.Variant, h.X)
			}
			if len(hazards) == 0 {
				hazards = append(hazards, "-")
			}
			fmt.Printf("  %-5d  %-6d  %-7d  %s\n", level, layout.Gem.X, layout.Portal.X, strings.Join(hazards, " "))
		}
	}
	return nil
}
