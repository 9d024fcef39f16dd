package main

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/ubench/benchmark"
	"github.com/dshills/ubench/config"
)

type runFlags struct {
	providers     string
	suites        string
	methods       string
	trials        int
	warmup        int
	iterations    int
	iterationTime time.Duration
	batch         int
	policy        string
	seed          uint64
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the selected benchmark cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(func(cfg *config.Config) error {
				return f.apply(cmd, cfg)
			})
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
			runCfg, err := cfg.RunConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := benchmark.NewRunner(runCfg, logger).Run(ctx, cases)
			if err != nil {
				logger.Error("benchmark run failed", "error", err)
				return err
			}

			out := cmd.OutOrStdout()
			benchmark.PrintResults(out, report)

			// Memory usage (approximate)
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			fmt.Fprintf(out, "Memory usage: %.2f MB\n", float64(m.Alloc)/1024/1024)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.providers, "providers", "", "comma separated providers: std, clamped, math32")
	flags.StringVar(&f.suites, "suites", "", "comma separated suites: math, physics")
	flags.StringVar(&f.methods, "methods", "", "comma separated method filter, e.g. sqrt,quat")
	flags.IntVar(&f.trials, "trials", 0, "number of trials (fixtures)")
	flags.IntVar(&f.warmup, "warmup", 0, "warm-up iterations per trial")
	flags.IntVar(&f.iterations, "iterations", 0, "measurement iterations per trial")
	flags.DurationVar(&f.iterationTime, "iteration-time", 0, "duration of one iteration")
	flags.IntVar(&f.batch, "batch", 0, "invocations between clock reads")
	flags.StringVar(&f.policy, "policy", "", "fixture policy: seeded, fixed")
	flags.Uint64Var(&f.seed, "seed", 0, "fixture seed")
	return cmd
}

// apply copies explicitly set flags over the loaded configuration
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("providers") {
		cfg.Run.Providers = config.SplitList(f.providers)
	}
	if flags.Changed("suites") {
		cfg.Run.Suites = config.SplitList(f.suites)
	}
	if flags.Changed("methods") {
		cfg.Run.Methods = config.SplitList(f.methods)
	}
	if flags.Changed("trials") {
		cfg.Run.Trials = f.trials
	}
	if flags.Changed("warmup") {
		cfg.Run.WarmupIterations = f.warmup
	}
	if flags.Changed("iterations") {
		cfg.Run.MeasurementIterations = f.iterations
	}
	if flags.Changed("iteration-time") {
		cfg.Run.IterationTime = f.iterationTime
	}
	if flags.Changed("batch") {
		cfg.Run.BatchSize = f.batch
	}
	if flags.Changed("policy") {
		cfg.Fixture.Policy = f.policy
	}
	if flags.Changed("seed") {
		cfg.Fixture.Seed = f.seed
	}
	return nil
}
