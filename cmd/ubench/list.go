package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/ubench/benchmark"
	"github.com/dshills/ubench/core"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured benchmark cases and trial fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(nil)
			if err != nil {
				return err
			}
			scene, err := bootstrapPhysics(cmd, cfg, logger)
			if err != nil {
				return err
			}

			sel, err := cfg.Selection()
			if err != nil {
				return err
			}
			cases, err := benchmark.Cases(sel, scene)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range cases {
				fmt.Fprintf(out, "%-24s %d result(s)\n", c.Name, c.Results)
			}

			run, err := cfg.RunConfig()
			if err != nil {
				return err
			}
			gen := core.NewGenerator(run.Policy, run.Seed)
			fmt.Fprintf(out, "\nFixtures (%s, seed %d):\n", run.Policy, run.Seed)
			for i, f := range gen.Sequence(run.Trials) {
				fmt.Fprintf(out, "  trial %d: %v\n", i, f)
			}
			return nil
		},
	}
}
