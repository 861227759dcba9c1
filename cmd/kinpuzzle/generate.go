package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ersonp/kinpuzzle/internal/application/handlers"
	"github.com/ersonp/kinpuzzle/internal/infrastructure/config"
)

type generateFlags struct {
	people     int
	length     int
	seed       int64
	seating    string
	relations  string
	difficulty string
	dense      bool
	format     string
	output     string
	noColor    bool
	preset     string
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle",
		Long: `Generates a relationship puzzle with a guaranteed solution path.

Unset flags fall back to the named preset, then to .kinpuzzle/config.yaml.

Examples:
  kinpuzzle generate --people 4 --seed 42 --seating-kind linear --relations social
  kinpuzzle generate -p 6 -l 4 --difficulty high -f text
  kinpuzzle generate --preset round_table -o puzzle.yaml -f yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.people, "people", "p", 0, "Number of people")
	cmd.Flags().IntVarP(&flags.length, "length", "l", 0, "Minimum solution path length")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "Random seed (default: clock)")
	cmd.Flags().StringVar(&flags.seating, "seating-kind", "", "Seating layout: linear, circular (default: random)")
	cmd.Flags().StringVar(&flags.relations, "relations", "", "Relation profile: auto, social, spatial, all")
	cmd.Flags().StringVar(&flags.difficulty, "difficulty", "", "Difficulty: low, medium, high")
	cmd.Flags().BoolVar(&flags.dense, "dense", false, "Compact text rendering")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format (json, yaml, text)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored text output")
	cmd.Flags().StringVar(&flags.preset, "preset", "", "Named preset from .kinpuzzle/presets.yaml")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	return withDeps("generate", func(deps *Deps) error {
		gen := deps.Config.Generate
		if flags.preset != "" {
			presets, err := config.LoadPresets(deps.BasePath)
			if err != nil {
				return fmt.Errorf("loading presets: %w", err)
			}
			preset, err := presets.Get(flags.preset)
			if err != nil {
				return err
			}
			gen = preset.Apply(gen)
		}

		req := buildGenerateRequest(cmd, flags, gen)

		format := deps.Config.Output.Format
		if cmd.Flags().Changed("format") {
			format = flags.format
		}
		if !slices.Contains(validFormats, format) {
			return fmt.Errorf("invalid format %q, valid formats: %v", format, validFormats)
		}

		puzzle, err := deps.GenerateHandler.Handle(cmd.Context(), req)
		if err != nil {
			return err
		}

		r := &renderer{
			format: format,
			color:  deps.Config.Output.Color && !flags.noColor && flags.output == "",
			output: flags.output,
		}
		if err := r.render(puzzle); err != nil {
			return err
		}

		if flags.output != "" {
			fmt.Fprintf(os.Stderr, "Wrote puzzle (seed %d) to %s\n", puzzle.Seed, flags.output)
		}
		return nil
	})
}

// buildGenerateRequest layers explicitly set flags over the configured defaults.
func buildGenerateRequest(cmd *cobra.Command, flags generateFlags, gen config.GenerateConfig) handlers.GenerateRequest {
	req := handlers.GenerateRequest{
		People:     gen.People,
		Length:     gen.Length,
		Seating:    gen.Seating,
		Relations:  gen.Relations,
		Difficulty: gen.Difficulty,
		Dense:      gen.Dense,
	}

	changed := cmd.Flags().Changed
	if changed("people") {
		req.People = flags.people
	}
	if changed("length") {
		req.Length = flags.length
	}
	if changed("seed") {
		seed := flags.seed
		req.Seed = &seed
	}
	if changed("seating-kind") {
		req.Seating = flags.seating
	}
	if changed("relations") {
		req.Relations = flags.relations
	}
	if changed("difficulty") {
		req.Difficulty = flags.difficulty
	}
	if changed("dense") {
		req.Dense = flags.dense
	}

	return req
}
