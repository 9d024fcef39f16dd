package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/ubench/config"
	"github.com/dshills/ubench/physics"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ubench",
	Short: "Scalar math and physics accessor microbenchmarks",
	Long: `ubench times single-precision math functions from several providers
and a physics body rotation accessor against identical, reproducible
fixtures, routing every result through a blackhole sink.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/"+config.DefaultFileName+")")
	rootCmd.AddCommand(newRunCmd(), newListCmd(), newInfoCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and environment, then applies flags
func loadConfig(apply func(*config.Config) error) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	if apply != nil {
		if err := apply(cfg); err != nil {
			return nil, nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// bootstrapPhysics brings up the physics scene when the config selects it
func bootstrapPhysics(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*physics.Scene, error) {
	if !cfg.NeedsPhysics() {
		return nil, nil
	}

	scene, err := physics.Bootstrap(logger)
	if err != nil {
		logger.Error("physics initialization failed", "error", err)
		return nil, err
	}
	scene.Library.PrintLibraryInfo(cmd.ErrOrStderr())
	return scene, nil
}
