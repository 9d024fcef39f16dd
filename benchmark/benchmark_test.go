package benchmark

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ubench/core"
	"github.com/dshills/ubench/physics"
	"github.com/dshills/ubench/provider"
)

// recordingSink is a test double that keeps every consumed value in order
type recordingSink struct {
	values []float32
}

func (s *recordingSink) Consume(v float32) {
	s.values = append(s.values, v)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testScene(t *testing.T) *physics.Scene {
	t.Helper()
	scene, err := physics.Bootstrap(quietLogger())
	require.NoError(t, err)
	return scene
}

func fastConfig() RunConfig {
	cfg := DefaultRunConfig()
	cfg.Trials = 2
	cfg.WarmupIterations = 1
	cfg.MeasurementIterations = 2
	cfg.IterationTime = time.Millisecond
	cfg.BatchSize = 16
	return cfg
}

func TestMethodsConsumeOncePerResult(t *testing.T) {
	f := core.Fixture{W: 0.5, X: 0.3, Y: 0.7, Z: 1.5}
	p := provider.Std{}

	tests := []struct {
		name string
		run  func(*recordingSink)
		want []float32
	}{
		{"acos", func(s *recordingSink) { Acos(p, s, &f) }, []float32{p.Acos(f.W), p.Acos(f.X), p.Acos(f.Y)}},
		{"atan", func(s *recordingSink) { Atan(p, s, &f) }, []float32{p.Atan(f.W), p.Atan(f.X), p.Atan(f.Y), p.Atan(f.Z)}},
		{"cos", func(s *recordingSink) { Cos(p, s, &f) }, []float32{p.Cos(f.W), p.Cos(f.X), p.Cos(f.Y), p.Cos(f.Z)}},
		{"exp", func(s *recordingSink) { Exp(p, s, &f) }, []float32{p.Exp(f.W), p.Exp(f.X), p.Exp(f.Y), p.Exp(f.Z)}},
		{"pow", func(s *recordingSink) { Pow(p, s, &f) }, []float32{p.Pow(f.X, f.W), p.Pow(f.Y, f.X), p.Pow(f.Z, f.Y)}},
		{"sin", func(s *recordingSink) { Sin(p, s, &f) }, []float32{p.Sin(f.W), p.Sin(f.X), p.Sin(f.Y), p.Sin(f.Z)}},
		{"sqrt", func(s *recordingSink) { Sqrt(p, s, &f) }, []float32{p.Sqrt(f.X), p.Sqrt(f.Y), p.Sqrt(f.Z)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			tt.run(sink)
			assert.Equal(t, tt.want, sink.values)

			// A second call adds exactly as many values again.
			tt.run(sink)
			assert.Len(t, sink.values, 2*len(tt.want))
		})
	}
}

func TestSqrtScenario(t *testing.T) {
	f := core.Fixture{W: 0.5, X: 0.3, Y: 0.7, Z: 1.5}
	want := []float64{0.5477, 0.8367, 1.2247}

	for _, p := range []provider.Provider{provider.Std{}, provider.Clamped{}, provider.Math32{}} {
		t.Run(p.Name(), func(t *testing.T) {
			sink := &recordingSink{}
			Sqrt(p, sink, &f)

			require.Len(t, sink.values, 3)
			for i := range want {
				assert.InDelta(t, want[i], sink.values[i], 1e-4)
			}
			assert.NotContains(t, sink.values, p.Sqrt(f.W), "w is never routed through sqrt")
		})
	}
}

func TestAcosScenario(t *testing.T) {
	for _, p := range []provider.Provider{provider.Std{}, provider.Clamped{}, provider.Math32{}} {
		t.Run(p.Name(), func(t *testing.T) {
			upper := core.Fixture{W: 1, X: 1, Y: 1, Z: 0}
			lower := core.Fixture{W: -1, X: 1, Y: 1, Z: 0}
			require.NoError(t, upper.Validate())
			require.NoError(t, lower.Validate())

			check := core.NewCheckingSink(nil)
			sink := &recordingSink{}
			Acos(p, sink, &upper)
			Acos(p, check, &upper)
			assert.InDelta(t, 0.0, sink.values[0], 1e-6)

			sink = &recordingSink{}
			Acos(p, sink, &lower)
			Acos(p, check, &lower)
			assert.InDelta(t, math.Pi, sink.values[0], 1e-6)

			assert.NoError(t, check.Err())
		})
	}
}

func TestQuatMethods(t *testing.T) {
	scene := testScene(t)
	bi := scene.System.BodyInterface()

	first := &recordingSink{}
	quatChecked(scene.Box, core.NewCheckingSink(first))
	assert.Equal(t, []float32{1, 0, 0, 0}, first.values)

	for i := 0; i < 100; i++ {
		again := &recordingSink{}
		quatChecked(scene.Box, core.NewCheckingSink(again))
		require.Equal(t, first.values, again.values)

		byID := &recordingSink{}
		quatByIDChecked(bi, scene.Box.ID(), core.NewCheckingSink(byID))
		require.Equal(t, first.values, byID.values)
	}
}

// scaledProvider is a provider outside the built-in set
type scaledProvider struct {
	provider.Std
}

func (scaledProvider) Name() string { return "std" }

func (p scaledProvider) Sqrt(x float32) float32 { return 2 * p.Std.Sqrt(x) }

func TestGeneratedBodiesMatchGeneric(t *testing.T) {
	factory := provider.NewDefaultFactory()
	fixtures := core.NewGenerator(core.PolicySeeded, 3).Sequence(50)

	for _, kind := range provider.AllKinds() {
		p, err := factory.CreateProvider(kind)
		require.NoError(t, err)

		for _, method := range MathMethods {
			generated, ok := timedBodies[kind][method]
			require.True(t, ok, "%s/%s", kind, method)
			generic := genericBody(p, method)

			t.Run(string(kind)+"/"+method, func(t *testing.T) {
				for i := range fixtures {
					want := &recordingSink{}
					generic.verify(core.NewCheckingSink(want), &fixtures[i])
					got := &recordingSink{}
					generated.verify(core.NewCheckingSink(got), &fixtures[i])
					require.Equal(t, want.values, got.values, "fixture %v", fixtures[i])

					a, b := core.NewBlackhole(), core.NewBlackhole()
					generic.run(a, &fixtures[i])
					generated.run(b, &fixtures[i])
					require.Equal(t, a.Count(), b.Count())
					require.Equal(t, a.Sum(), b.Sum())
				}
			})
		}
	}
}

func TestBuiltinCasesCallConcreteBodies(t *testing.T) {
	funcName := func(fn any) string {
		return runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	}

	for _, p := range []provider.Provider{provider.Std{}, provider.Clamped{}, provider.Math32{}} {
		for _, c := range MathCases(p) {
			run := funcName(c.Run)
			verify := funcName(c.Verify)
			assert.NotContains(t, run, "[", "%s is timed through a generic instantiation", c.Name)
			assert.NotContains(t, run, ".func", "%s is timed through a closure", c.Name)
			assert.True(t, strings.HasSuffix(run, "."+c.Method+reflect.TypeOf(p).Name()),
				"%s runs %s", c.Name, run)
			assert.Equal(t, run+"Checked", verify)
		}
	}

	// A provider outside the built-in set keeps its own behavior even if it
	// reuses a built-in name.
	cases := MathCases(scaledProvider{})
	f := core.FixedFixture
	for _, c := range cases {
		if c.Method != "sqrt" {
			continue
		}
		sink := &recordingSink{}
		c.Verify(core.NewCheckingSink(sink), &f)
		assert.InDelta(t, 2*0.5477, sink.values[0], 1e-3)
	}
}

func TestCases(t *testing.T) {
	scene := testScene(t)

	cases, err := Cases(Selection{}, scene)
	require.NoError(t, err)
	assert.Len(t, cases, len(provider.AllKinds())*len(MathMethods)+len(PhysicsMethods))

	names := make(map[string]bool)
	for _, c := range cases {
		assert.False(t, names[c.Name], "duplicate case %s", c.Name)
		names[c.Name] = true
	}
	assert.True(t, names["math/std/acos"])
	assert.True(t, names["math/math32/pow"])
	assert.True(t, names["physics/quat"])
	assert.True(t, names["physics/quat-id"])

	t.Run("method filter", func(t *testing.T) {
		cases, err := Cases(Selection{
			Suites:    []Suite{SuiteMath},
			Providers: []provider.Kind{provider.KindClamped},
			Methods:   []string{"sqrt", "sin"},
		}, nil)
		require.NoError(t, err)
		require.Len(t, cases, 2)
		assert.Equal(t, "math/clamped/sin", cases[0].Name)
		assert.Equal(t, "math/clamped/sqrt", cases[1].Name)
	})

	t.Run("physics needs scene", func(t *testing.T) {
		_, err := Cases(Selection{Suites: []Suite{SuitePhysics}}, nil)
		assert.ErrorIs(t, err, ErrNoScene)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := Cases(Selection{Methods: []string{"tan"}}, scene)
		assert.ErrorIs(t, err, ErrUnknownMethod)
	})

	t.Run("empty selection", func(t *testing.T) {
		_, err := Cases(Selection{Suites: []Suite{SuiteMath}, Methods: []string{"quat"}}, nil)
		assert.ErrorIs(t, err, ErrNoCases)
	})

	t.Run("duplicate suite", func(t *testing.T) {
		_, err := Cases(Selection{Suites: []Suite{SuiteMath, SuiteMath}}, scene)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("duplicate provider", func(t *testing.T) {
		_, err := Cases(Selection{Providers: []provider.Kind{provider.KindStd, provider.KindStd}}, scene)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := Cases(Selection{Providers: []provider.Kind{"fdlibm"}}, scene)
		assert.ErrorIs(t, err, provider.ErrUnknownKind)
	})
}

func TestCasesDeclareTheirResults(t *testing.T) {
	cases, err := Cases(Selection{}, testScene(t))
	require.NoError(t, err)

	fixtures := core.NewGenerator(core.PolicySeeded, 5).Sequence(100)
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.NoError(t, verify(c, fixtures))

			hole := core.NewBlackhole()
			c.Run(hole, &fixtures[0])
			assert.Equal(t, uint64(c.Results), hole.Count())
		})
	}
}

func TestParseSuites(t *testing.T) {
	suites, err := ParseSuites(nil)
	require.NoError(t, err)
	assert.Equal(t, AllSuites(), suites)

	suites, err = ParseSuites([]string{"physics", "math"})
	require.NoError(t, err)
	assert.Equal(t, []Suite{SuitePhysics, SuiteMath}, suites)

	_, err = ParseSuites([]string{"math", " MATH "})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = ParseSuites([]string{"render"})
	assert.ErrorIs(t, err, ErrUnknownSuite)
}

func TestParseSuite(t *testing.T) {
	s, err := ParseSuite(" Physics ")
	require.NoError(t, err)
	assert.Equal(t, SuitePhysics, s)

	_, err = ParseSuite("jolt")
	assert.ErrorIs(t, err, ErrUnknownSuite)
}

func TestRunner(t *testing.T) {
	cases, err := Cases(Selection{
		Suites:    []Suite{SuiteMath, SuitePhysics},
		Providers: []provider.Kind{provider.KindStd},
		Methods:   []string{"sqrt", "quat"},
	}, testScene(t))
	require.NoError(t, err)

	cfg := fastConfig()
	report, err := NewRunner(cfg, quietLogger()).Run(context.Background(), cases)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, core.NewGenerator(cfg.Policy, cfg.Seed).Sequence(cfg.Trials), report.Fixtures)
	require.Len(t, report.Results, 2)

	for _, r := range report.Results {
		t.Logf("%s: avg %.2fns over %d samples", r.Case, r.AvgNs, r.Samples)
		assert.Equal(t, cfg.Trials*cfg.MeasurementIterations, r.Samples)
		assert.Positive(t, r.Invocations)
		assert.Zero(t, r.Invocations%int64(cfg.BatchSize))
		assert.Positive(t, r.AvgNs)
		assert.LessOrEqual(t, r.MinNs, r.AvgNs)
		assert.GreaterOrEqual(t, r.MaxNs, r.AvgNs)
		assert.Positive(t, r.Throughput)
	}
	assert.Equal(t, "math/std/sqrt", report.Results[0].Case)
	assert.Equal(t, "physics/quat", report.Results[1].Case)
}

func TestRunnerFixedPolicy(t *testing.T) {
	cases := MathCases(provider.Math32{})
	cfg := fastConfig()
	cfg.Policy = core.PolicyFixed
	cfg.Trials = 3

	report, err := NewRunner(cfg, quietLogger()).Run(context.Background(), cases[:1])
	require.NoError(t, err)
	for _, f := range report.Fixtures {
		assert.Equal(t, core.FixedFixture, f)
	}
}

func TestRunnerAbortsOnNonFinite(t *testing.T) {
	bad := Case{
		Name:    "math/broken/sqrt",
		Method:  "sqrt",
		Results: 1,
		Run:     func(h *core.Blackhole, d *core.Fixture) { h.Consume(provider.Std{}.Sqrt(-d.Z - 1)) },
		Verify:  func(c *core.CheckingSink, d *core.Fixture) { c.Consume(provider.Std{}.Sqrt(-d.Z - 1)) },
	}

	_, err := NewRunner(fastConfig(), quietLogger()).Run(context.Background(), []Case{bad})
	assert.ErrorIs(t, err, core.ErrNonFinite)
}

func TestRunnerResultCountMismatch(t *testing.T) {
	batched := Case{
		Name:    "math/batched/cos",
		Method:  "cos",
		Results: 2,
		Run:     func(h *core.Blackhole, d *core.Fixture) { h.Consume(d.W + d.X) },
		Verify:  func(c *core.CheckingSink, d *core.Fixture) { c.Consume(d.W + d.X) },
	}

	_, err := NewRunner(fastConfig(), quietLogger()).Run(context.Background(), []Case{batched})
	assert.ErrorIs(t, err, ErrResultCount)
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(fastConfig(), quietLogger()).Run(ctx, MathCases(provider.Std{}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerRejectsBadConfig(t *testing.T) {
	cfg := fastConfig()
	cfg.Trials = 0
	_, err := NewRunner(cfg, quietLogger()).Run(context.Background(), MathCases(provider.Std{}))
	assert.Error(t, err)

	_, err = NewRunner(fastConfig(), quietLogger()).Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoCases)
}

func TestRunConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RunConfig)
	}{
		{"trials", func(c *RunConfig) { c.Trials = 0 }},
		{"warmup", func(c *RunConfig) { c.WarmupIterations = -1 }},
		{"measurement", func(c *RunConfig) { c.MeasurementIterations = 0 }},
		{"iteration time", func(c *RunConfig) { c.IterationTime = 0 }},
		{"batch", func(c *RunConfig) { c.BatchSize = 0 }},
		{"policy", func(c *RunConfig) { c.Policy = "random" }},
	}

	require.NoError(t, DefaultRunConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestCalculateResult(t *testing.T) {
	c := Case{Name: "math/std/exp", Suite: SuiteMath, Provider: provider.KindStd, Method: "exp"}
	samples := []float64{5, 1, 10, 3}

	r := calculateResult(c, samples, 4000, 2*time.Second)
	assert.Equal(t, "math/std/exp", r.Case)
	assert.Equal(t, 4, r.Samples)
	assert.InDelta(t, 4.75, r.AvgNs, 1e-9)
	assert.Equal(t, 1.0, r.MinNs)
	assert.Equal(t, 10.0, r.MaxNs)
	assert.Equal(t, 5.0, r.P50Ns)
	assert.InDelta(t, 3.345, r.StdDevNs, 1e-3)
	assert.InDelta(t, 2000, r.Throughput, 1e-9)

	// Input order is preserved.
	assert.Equal(t, []float64{5, 1, 10, 3}, samples)

	empty := calculateResult(c, nil, 0, 0)
	assert.Zero(t, empty.AvgNs)
}

func TestFormatNanos(t *testing.T) {
	tests := []struct {
		ns       float64
		expected string
	}{
		{3.456, "3.46ns"},
		{500, "500.00ns"},
		{1500, "1.5µs"},
		{1.5e6, "1.5ms"},
		{1.5e9, "1.50s"},
	}

	for _, test := range tests {
		result := formatNanos(test.ns)
		if result != test.expected {
			t.Errorf("formatNanos(%v) = %s, expected %s", test.ns, result, test.expected)
		}
	}
}

func TestPrintResults(t *testing.T) {
	report := &Report{
		RunID:    "run-1",
		Config:   DefaultRunConfig(),
		Fixtures: []core.Fixture{core.FixedFixture},
		Results: []Result{
			{Case: "math/std/sin", Samples: 5, AvgNs: 4.2, MinNs: 4, MaxNs: 5, Throughput: 2.4e8},
		},
	}

	var buf bytes.Buffer
	PrintResults(&buf, report)
	out := buf.String()
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "math/std/sin")
	assert.Contains(t, out, "4.20ns")
	assert.Contains(t, out, "trial 0: {w=0.5 x=0.3 y=0.7 z=1.5}")
}
