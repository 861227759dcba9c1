package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/kinpuzzle/internal/application/handlers"
)

type relationsFlags struct {
	seating    string
	relations  string
	difficulty string
	people     int
	format     string
}

func newRelationsCmd() *cobra.Command {
	var flags relationsFlags

	cmd := &cobra.Command{
		Use:   "relations",
		Short: "List the relation pool for a configuration",
		Long: `Shows which relations a puzzle with the given settings draws from,
with each label's category and inverse.

Examples:
  kinpuzzle relations
  kinpuzzle relations --seating-kind circular --difficulty high
  kinpuzzle relations --relations spatial --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelations(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.seating, "seating-kind", "", "Seating layout: linear, circular")
	cmd.Flags().StringVar(&flags.relations, "relations", "", "Relation profile: auto, social, spatial, all")
	cmd.Flags().StringVar(&flags.difficulty, "difficulty", "", "Difficulty: low, medium, high")
	cmd.Flags().IntVarP(&flags.people, "people", "p", 0, "Number of people")
	cmd.Flags().StringVar(&flags.format, "format", "table", "Output format: table, json")

	return cmd
}

func runRelations(cmd *cobra.Command, flags relationsFlags) error {
	if flags.format != "table" && flags.format != FormatJSON {
		return fmt.Errorf("invalid format: %s (valid: table, json)", flags.format)
	}

	return withDeps("relations", func(deps *Deps) error {
		gen := deps.Config.Generate
		req := handlers.RelationsRequest{
			Seating:    gen.Seating,
			Relations:  gen.Relations,
			Difficulty: gen.Difficulty,
			People:     gen.People,
		}
		if cmd.Flags().Changed("seating-kind") {
			req.Seating = flags.seating
		}
		if req.Seating == "" {
			req.Seating = DefaultPreviewSeating
		}
		if cmd.Flags().Changed("relations") {
			req.Relations = flags.relations
		}
		if cmd.Flags().Changed("difficulty") {
			req.Difficulty = flags.difficulty
		}
		if cmd.Flags().Changed("people") {
			req.People = flags.people
		}

		infos, err := deps.RelationsHandler.Handle(req)
		if err != nil {
			return err
		}

		if flags.format == FormatJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(infos)
		}

		pal := newPalette(deps.Config.Output.Color)
		fmt.Printf("%-22s %-10s %-22s %s\n", "RELATION", "CATEGORY", "INVERSE", "FAMILY")
		fmt.Printf("%-22s %-10s %-22s %s\n", "--------", "--------", "-------", "------")
		for _, info := range infos {
			// Pad before colouring so escape codes don't skew the columns.
			name := fmt.Sprintf("%-22s", info.Relation)
			fmt.Printf("%s %-10s %-22s %s\n", pal.colorize(info.Relation, name), info.Category, info.Inverse, info.Family)
		}
		return nil
	})
}
