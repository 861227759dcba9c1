package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/kinpuzzle/internal/infrastructure/config"
)

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage generation presets",
		RunE:  runPresetsList,
	}

	cmd.AddCommand(
		newPresetsListCmd(),
		newPresetsSaveCmd(),
		newPresetsDeleteCmd(),
	)

	return cmd
}

func newPresetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all presets",
		RunE:  runPresetsList,
	}
}

func runPresetsList(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	presets, err := config.LoadPresets(cwd)
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}

	names := presets.Names()
	if len(names) == 0 {
		fmt.Println("No presets configured.")
		fmt.Println("Use 'kinpuzzle presets save NAME' to create one.")
		return nil
	}

	fmt.Printf("%-20s %-30s %s\n", "NAME", "SETTINGS", "DESCRIPTION")
	fmt.Printf("%-20s %-30s %s\n", "----", "--------", "-----------")

	for _, name := range names {
		p := presets.Presets[name]
		fmt.Printf("%-20s %-30s %s\n", name, describePreset(p), p.Description)
	}

	return nil
}

// describePreset summarises the settings p yields over the built-in defaults.
func describePreset(p config.Preset) string {
	gen := p.Apply(config.Default().Generate)
	seating := gen.Seating
	if seating == "" {
		seating = "random"
	}
	return fmt.Sprintf("p=%d l=%d %s/%s/%s", gen.People, gen.Length, seating, gen.Relations, gen.Difficulty)
}

type presetFlags struct {
	description string
	people      int
	length      int
	seating     string
	relations   string
	difficulty  string
	dense       bool
}

func newPresetsSaveCmd() *cobra.Command {
	var flags presetFlags

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save or replace a preset",
		Long: `Saves a named preset. Unset flags are taken from the current configuration.

Examples:
  kinpuzzle presets save round-table --seating-kind circular --people 6 --difficulty high`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresetsSave(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.description, "description", "d", "", "Preset description")
	cmd.Flags().IntVarP(&flags.people, "people", "p", 0, "Number of people")
	cmd.Flags().IntVarP(&flags.length, "length", "l", 0, "Minimum solution path length")
	cmd.Flags().StringVar(&flags.seating, "seating-kind", "", "Seating layout: linear, circular")
	cmd.Flags().StringVar(&flags.relations, "relations", "", "Relation profile: auto, social, spatial, all")
	cmd.Flags().StringVar(&flags.difficulty, "difficulty", "", "Difficulty: low, medium, high")
	cmd.Flags().BoolVar(&flags.dense, "dense", false, "Compact text rendering")

	return cmd
}

func runPresetsSave(cmd *cobra.Command, name string, flags presetFlags) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	presets, err := config.LoadPresets(cwd)
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}

	preset := buildPreset(cmd, flags, cfg.Generate)

	key, err := presets.Add(name, preset)
	if err != nil {
		return err
	}

	if err := presets.Save(cwd); err != nil {
		return err
	}

	fmt.Printf("Saved preset %q\n", key)

	return nil
}

func newPresetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresetsDelete(args[0])
		},
	}
}

func runPresetsDelete(name string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	presets, err := config.LoadPresets(cwd)
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}

	if !presets.Remove(name) {
		return fmt.Errorf("preset %q not found", name)
	}

	if err := presets.Save(cwd); err != nil {
		return err
	}

	fmt.Printf("Deleted preset %q\n", name)

	return nil
}

// buildPreset starts from the configured defaults and overlays explicitly set
// flags, zero values included.
func buildPreset(cmd *cobra.Command, flags presetFlags, gen config.GenerateConfig) config.Preset {
	preset := config.Preset{
		PresetOptions: config.OptionsFrom(gen),
		Description:   flags.description,
	}

	changed := cmd.Flags().Changed
	if changed("people") {
		preset.People = &flags.people
	}
	if changed("length") {
		preset.Length = &flags.length
	}
	if changed("seating-kind") {
		preset.Seating = &flags.seating
	}
	if changed("relations") {
		preset.Relations = &flags.relations
	}
	if changed("difficulty") {
		preset.Difficulty = &flags.difficulty
	}
	if changed("dense") {
		preset.Dense = &flags.dense
	}

	return preset
}
