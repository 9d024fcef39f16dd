package benchmark

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/ubench/core"
	"github.com/dshills/ubench/provider"
)

// ErrResultCount is returned when a method's sink calls do not match the
// number of results it declares
var ErrResultCount = errors.New("sink call count mismatch")

// RunConfig contains configuration for a benchmark run
type RunConfig struct {
	Trials                int
	WarmupIterations      int
	MeasurementIterations int
	IterationTime         time.Duration
	// BatchSize is the number of invocations between clock reads
	BatchSize int
	Policy    core.Policy
	Seed      uint64
}

// DefaultRunConfig returns the settings used when nothing is configured
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Trials:                3,
		WarmupIterations:      2,
		MeasurementIterations: 5,
		IterationTime:         200 * time.Millisecond,
		BatchSize:             1024,
		Policy:                core.PolicySeeded,
		Seed:                  1,
	}
}

// Validate checks the run configuration
func (c RunConfig) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials must be positive: %d", c.Trials)
	}
	if c.WarmupIterations < 0 {
		return fmt.Errorf("warmup iterations must not be negative: %d", c.WarmupIterations)
	}
	if c.MeasurementIterations < 1 {
		return fmt.Errorf("measurement iterations must be positive: %d", c.MeasurementIterations)
	}
	if c.IterationTime <= 0 {
		return fmt.Errorf("iteration time must be positive: %v", c.IterationTime)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch size must be positive: %d", c.BatchSize)
	}
	if _, err := core.ParsePolicy(string(c.Policy)); err != nil {
		return err
	}
	return nil
}

// Result contains timing results for one case, in nanoseconds per call
type Result struct {
	Case        string        `json:"case"`
	Suite       Suite         `json:"suite"`
	Provider    provider.Kind `json:"provider,omitempty"`
	Method      string        `json:"method"`
	Samples     int           `json:"samples"`
	Invocations int64         `json:"invocations"`
	TotalTime   time.Duration `json:"total_time"`
	AvgNs       float64       `json:"avg_ns"`
	MinNs       float64       `json:"min_ns"`
	MaxNs       float64       `json:"max_ns"`
	P50Ns       float64       `json:"p50_ns"`
	P95Ns       float64       `json:"p95_ns"`
	P99Ns       float64       `json:"p99_ns"`
	StdDevNs    float64       `json:"stddev_ns"`
	Throughput  float64       `json:"throughput"` // invocations per second
}

// Report is the outcome of one Run
type Report struct {
	RunID    string         `json:"run_id"`
	Started  time.Time      `json:"started"`
	Duration time.Duration  `json:"duration"`
	Config   RunConfig      `json:"config"`
	Fixtures []core.Fixture `json:"fixtures"`
	Results  []Result       `json:"results"`
}

// Runner executes benchmark cases over a shared fixture sequence
type Runner struct {
	config RunConfig
	logger *slog.Logger
}

// NewRunner creates a new benchmark runner
func NewRunner(config RunConfig, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		config: config,
		logger: logger,
	}
}

// Run times every case. All cases see the same fixture in the same trial.
// Any invalid fixture or non-finite result aborts the run before timing.
func (r *Runner) Run(ctx context.Context, cases []Case) (*Report, error) {
	if err := r.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run configuration: %w", err)
	}
	if len(cases) == 0 {
		return nil, ErrNoCases
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Config:  r.config,
	}
	logger := r.logger.With("run_id", report.RunID)

	gen := core.NewGenerator(r.config.Policy, r.config.Seed)
	report.Fixtures = gen.Sequence(r.config.Trials)
	for i, f := range report.Fixtures {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("trial %d fixture %v: %w", i, f, err)
		}
	}

	for _, c := range cases {
		if err := verify(c, report.Fixtures); err != nil {
			return nil, err
		}
	}

	logger.Info("starting run",
		"cases", len(cases),
		"trials", r.config.Trials,
		"policy", r.config.Policy,
		"seed", r.config.Seed)

	hole := core.NewBlackhole()
	var consumed uint64
	for _, c := range cases {
		hole.Reset()
		result, err := r.runCase(ctx, c, report.Fixtures, hole)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		report.Results = append(report.Results, result)
		consumed += hole.Count()
		logger.Debug("case complete",
			"case", c.Name,
			"avg_ns", result.AvgNs,
			"samples", result.Samples,
			"consumed", hole.Count(),
			"checksum", hole.Sum())
	}

	report.Duration = time.Since(report.Started)
	logger.Info("run complete", "duration", report.Duration, "consumed", consumed)
	return report, nil
}

// verify runs c once per fixture through a checking sink
func verify(c Case, fixtures []core.Fixture) error {
	for i := range fixtures {
		data := fixtures[i]
		check := core.NewCheckingSink(nil)
		c.Verify(check, &data)
		if err := check.Err(); err != nil {
			return fmt.Errorf("%s with fixture %v: %w", c.Name, data, err)
		}
		if check.Consumed() != c.Results {
			return fmt.Errorf("%s: %w: consumed %d values, declares %d",
				c.Name, ErrResultCount, check.Consumed(), c.Results)
		}
	}
	return nil
}

// runCase measures one case across every trial
func (r *Runner) runCase(ctx context.Context, c Case, fixtures []core.Fixture, hole *core.Blackhole) (Result, error) {
	samples := make([]float64, 0, len(fixtures)*r.config.MeasurementIterations)
	var invocations int64
	var total time.Duration

	for trial := range fixtures {
		// Per-trial copy: immutable for the trial, discarded after it.
		data := fixtures[trial]

		for i := 0; i < r.config.WarmupIterations; i++ {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			r.iteration(c, hole, &data)
		}

		for i := 0; i < r.config.MeasurementIterations; i++ {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			ops, elapsed := r.iteration(c, hole, &data)
			samples = append(samples, float64(elapsed.Nanoseconds())/float64(ops))
			invocations += ops
			total += elapsed
		}
	}

	return calculateResult(c, samples, invocations, total), nil
}

// iteration calls c in batches until the iteration time has elapsed
func (r *Runner) iteration(c Case, hole *core.Blackhole, data *core.Fixture) (int64, time.Duration) {
	run := c.Run
	batch := r.config.BatchSize
	var ops int64

	start := time.Now()
	deadline := start.Add(r.config.IterationTime)
	for {
		for i := 0; i < batch; i++ {
			run(hole, data)
		}
		ops += int64(batch)
		if now := time.Now(); !now.Before(deadline) {
			return ops, now.Sub(start)
		}
	}
}

// calculateResult computes statistics from per-iteration samples
func calculateResult(c Case, samples []float64, invocations int64, total time.Duration) Result {
	result := Result{
		Case:        c.Name,
		Suite:       c.Suite,
		Provider:    c.Provider,
		Method:      c.Method,
		Samples:     len(samples),
		Invocations: invocations,
		TotalTime:   total,
	}
	if len(samples) == 0 {
		return result
	}

	// Sort samples for percentile calculation
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var sum float64
	for _, s := range samples {
		sum += s
	}
	avg := sum / float64(len(samples))

	var sq float64
	for _, s := range samples {
		sq += (s - avg) * (s - avg)
	}

	result.AvgNs = avg
	result.MinNs = sorted[0]
	result.MaxNs = sorted[len(sorted)-1]
	result.P50Ns = sorted[len(sorted)*50/100]
	result.P95Ns = sorted[len(sorted)*95/100]
	result.P99Ns = sorted[len(sorted)*99/100]
	result.StdDevNs = math.Sqrt(sq / float64(len(samples)))
	if total > 0 {
		result.Throughput = float64(invocations) / total.Seconds()
	}
	return result
}

// PrintResults prints benchmark results in a formatted table
func PrintResults(w io.Writer, report *Report) {
	fmt.Fprintf(w, "\n=== Benchmark Results (run %s) ===\n", report.RunID)
	fmt.Fprintf(w, "Fixture policy: %s, seed %d, %d trial(s)\n",
		report.Config.Policy, report.Config.Seed, report.Config.Trials)
	for i, f := range report.Fixtures {
		fmt.Fprintf(w, "  trial %d: %v\n", i, f)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-24s %8s %10s %10s %10s %10s %10s %10s %14s\n",
		"Case", "Samples", "Avg", "Min", "Max", "P95", "P99", "StdDev", "Throughput")
	fmt.Fprintln(w, strings.Repeat("-", 112))

	for _, r := range report.Results {
		fmt.Fprintf(w, "%-24s %8d %10s %10s %10s %10s %10s %10s %12.3g/s\n",
			r.Case,
			r.Samples,
			formatNanos(r.AvgNs),
			formatNanos(r.MinNs),
			formatNanos(r.MaxNs),
			formatNanos(r.P95Ns),
			formatNanos(r.P99Ns),
			formatNanos(r.StdDevNs),
			r.Throughput,
		)
	}
	fmt.Fprintf(w, "\nTotal time: %v\n", report.Duration.Round(time.Millisecond))
}

// formatNanos formats a per-call time for display
func formatNanos(ns float64) string {
	switch {
	case ns < 1e3:
		return fmt.Sprintf("%.2fns", ns)
	case ns < 1e6:
		return fmt.Sprintf("%.1fµs", ns/1e3)
	case ns < 1e9:
		return fmt.Sprintf("%.1fms", ns/1e6)
	}
	return fmt.Sprintf("%.2fs", ns/1e9)
}
