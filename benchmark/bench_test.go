package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/dshills/ubench/core"
	"github.com/dshills/ubench/physics"
	"github.com/dshills/ubench/provider"
)

// Go-native entry points: go test -bench=. ./benchmark
// Each sub-benchmark is one trial; the fixture is generated before the
// timer starts and shared by every provider.

func benchFixture() core.Fixture {
	return core.NewGenerator(core.PolicySeeded, 1).Next()
}

func BenchmarkCases(b *testing.B) {
	scene, err := physics.Bootstrap(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		b.Fatal(err)
	}
	cases, err := Cases(Selection{}, scene)
	if err != nil {
		b.Fatal(err)
	}

	for _, c := range cases {
		b.Run(c.Name, func(b *testing.B) {
			data := benchFixture()
			hole := core.NewBlackhole()
			run := c.Run

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				run(hole, &data)
			}
		})
	}
}

// The benchmarks below call the generic methods directly, for comparison
// with the generated bodies BenchmarkCases times. The difference is the
// cost of calling through the shared instantiation.

func BenchmarkStdSqrt(b *testing.B) {
	data := benchFixture()
	hole := core.NewBlackhole()
	for i := 0; i < b.N; i++ {
		Sqrt(provider.Std{}, hole, &data)
	}
}

func BenchmarkMath32Sqrt(b *testing.B) {
	data := benchFixture()
	hole := core.NewBlackhole()
	for i := 0; i < b.N; i++ {
		Sqrt(provider.Math32{}, hole, &data)
	}
}

func BenchmarkStdSin(b *testing.B) {
	data := benchFixture()
	hole := core.NewBlackhole()
	for i := 0; i < b.N; i++ {
		Sin(provider.Std{}, hole, &data)
	}
}

func BenchmarkMath32Sin(b *testing.B) {
	data := benchFixture()
	hole := core.NewBlackhole()
	for i := 0; i < b.N; i++ {
		Sin(provider.Math32{}, hole, &data)
	}
}

func BenchmarkClampedAcos(b *testing.B) {
	data := benchFixture()
	hole := core.NewBlackhole()
	for i := 0; i < b.N; i++ {
		Acos(provider.Clamped{}, hole, &data)
	}
}

func BenchmarkQuat(b *testing.B) {
	scene, err := physics.Bootstrap(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		b.Fatal(err)
	}
	hole := core.NewBlackhole()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		quat(scene.Box, hole)
	}
}
