package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/ubench/benchmark"
	"github.com/dshills/ubench/core"
	"github.com/dshills/ubench/provider"
)

// DefaultFileName is looked up in the home directory when no path is given
const DefaultFileName = ".ubench.yml"

// Config represents the complete ubench configuration
type Config struct {
	// Run configuration
	Run RunConfig `yaml:"run" json:"run"`

	// Fixture generation
	Fixture FixtureConfig `yaml:"fixture" json:"fixture"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// RunConfig selects the cases and controls trials and iterations
type RunConfig struct {
	// Providers to compare; empty selects all
	Providers []string `yaml:"providers" json:"providers"`

	// Suites to run: "math", "physics"; empty selects all
	Suites []string `yaml:"suites" json:"suites"`

	// Methods filter, e.g. ["sqrt", "quat"]; empty keeps all
	Methods []string `yaml:"methods" json:"methods"`

	Trials                int           `yaml:"trials" json:"trials"`
	WarmupIterations      int           `yaml:"warmup_iterations" json:"warmup_iterations"`
	MeasurementIterations int           `yaml:"measurement_iterations" json:"measurement_iterations"`
	IterationTime         time.Duration `yaml:"iteration_time" json:"iteration_time"`
	BatchSize             int           `yaml:"batch_size" json:"batch_size"`
}

// FixtureConfig controls how trial inputs are generated
type FixtureConfig struct {
	// Policy: "seeded" or "fixed"
	Policy string `yaml:"policy" json:"policy"`
	Seed   uint64 `yaml:"seed" json:"seed"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Output string `yaml:"output" json:"output"`
}

// LoadConfig loads configuration from various sources with the following precedence:
// 1. Command-line flags (applied by the caller)
// 2. Environment variables
// 3. Configuration file (~/.ubench.yml or specified path)
// 4. Default values
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	// If no config path specified, try default location
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			configPath = filepath.Join(homeDir, DefaultFileName)
		}
	}

	// Load from file if it exists
	if configPath != "" {
		if err := loadConfigFromFile(configPath, config); err != nil {
			// Only return error if file exists but can't be read
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
			}
		}
	}

	// Override with environment variables
	if err := loadConfigFromEnv(config); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadConfigFromFile loads configuration from a YAML file
func loadConfigFromFile(path string, config *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, config)
}

// loadConfigFromEnv loads configuration from environment variables
func loadConfigFromEnv(config *Config) error {
	if seed := os.Getenv("UBENCH_SEED"); seed != "" {
		s, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid UBENCH_SEED %q: %w", seed, err)
		}
		config.Fixture.Seed = s
	}
	if policy := os.Getenv("UBENCH_POLICY"); policy != "" {
		config.Fixture.Policy = policy
	}
	if trials := os.Getenv("UBENCH_TRIALS"); trials != "" {
		n, err := strconv.Atoi(trials)
		if err != nil {
			return fmt.Errorf("invalid UBENCH_TRIALS %q: %w", trials, err)
		}
		config.Run.Trials = n
	}
	if providers := os.Getenv("UBENCH_PROVIDERS"); providers != "" {
		config.Run.Providers = SplitList(providers)
	}
	if level := os.Getenv("UBENCH_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	return nil
}

// SplitList splits a comma separated list, dropping empty entries
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	run := benchmark.DefaultRunConfig()
	return &Config{
		Run: RunConfig{
			Trials:                run.Trials,
			WarmupIterations:      run.WarmupIterations,
			MeasurementIterations: run.MeasurementIterations,
			IterationTime:         run.IterationTime,
			BatchSize:             run.BatchSize,
		},
		Fixture: FixtureConfig{
			Policy: string(run.Policy),
			Seed:   run.Seed,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	run, err := c.RunConfig()
	if err != nil {
		return err
	}
	if err := run.Validate(); err != nil {
		return err
	}

	if _, err := c.Selection(); err != nil {
		return err
	}

	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	switch c.Logging.Output {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}

	return nil
}

// RunConfig converts to benchmark.RunConfig
func (c *Config) RunConfig() (benchmark.RunConfig, error) {
	policy, err := core.ParsePolicy(c.Fixture.Policy)
	if err != nil {
		return benchmark.RunConfig{}, err
	}
	return benchmark.RunConfig{
		Trials:                c.Run.Trials,
		WarmupIterations:      c.Run.WarmupIterations,
		MeasurementIterations: c.Run.MeasurementIterations,
		IterationTime:         c.Run.IterationTime,
		BatchSize:             c.Run.BatchSize,
		Policy:                policy,
		Seed:                  c.Fixture.Seed,
	}, nil
}

// Selection converts the provider, suite and method lists
func (c *Config) Selection() (benchmark.Selection, error) {
	kinds, err := provider.ParseKinds(c.Run.Providers)
	if err != nil {
		return benchmark.Selection{}, err
	}

	suites, err := benchmark.ParseSuites(c.Run.Suites)
	if err != nil {
		return benchmark.Selection{}, err
	}

	methods := make([]string, 0, len(c.Run.Methods))
	for _, m := range c.Run.Methods {
		methods = append(methods, strings.ToLower(strings.TrimSpace(m)))
	}

	return benchmark.Selection{
		Suites:    suites,
		Providers: kinds,
		Methods:   methods,
	}, nil
}

// NeedsPhysics reports whether the physics suite is selected
func (c *Config) NeedsPhysics() bool {
	if len(c.Run.Suites) == 0 {
		return true
	}
	for _, s := range c.Run.Suites {
		if suite, err := benchmark.ParseSuite(s); err == nil && suite == benchmark.SuitePhysics {
			return true
		}
	}
	return false
}

// NewLogger builds the structured logger described by the logging section
func NewLogger(cfg LoggingConfig) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stderr
	if cfg.Output == "stdout" {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(out, opts)), nil
	}
	return slog.New(slog.NewTextHandler(out, opts)), nil
}

// parseLevel parses a slog level name
func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
	return level, nil
}
