package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check a rendered puzzle",
		Long: `Decodes a puzzle written by 'kinpuzzle generate' (JSON or YAML) and
re-checks seating, family, spatial, mirror, path and graph consistency.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "Input format (auto, json, yaml)")

	return cmd
}

func runVerify(path, format string) error {
	return withDeps("verify", func(deps *Deps) error {
		result, err := deps.VerifyHandler.Handle(path, format)
		if err != nil {
			return err
		}

		if result.Valid() {
			fmt.Printf("OK: %s (%d facts, seed %d)\n", path, len(result.Puzzle.Facts), result.Puzzle.Seed)
			return nil
		}

		for _, v := range result.Violations {
			fmt.Printf("  [%s] %s\n", v.Check, v.Message)
		}
		return fmt.Errorf("%s failed %d checks", path, len(result.Violations))
	})
}
