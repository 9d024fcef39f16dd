package provider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ubench/core"
)

func allProviders(t *testing.T) []Provider {
	t.Helper()
	factory := NewDefaultFactory()
	providers := make([]Provider, 0, len(AllKinds()))
	for _, kind := range AllKinds() {
		p, err := factory.CreateProvider(kind)
		require.NoError(t, err)
		require.Equal(t, string(kind), p.Name())
		providers = append(providers, p)
	}
	return providers
}

func TestAcosBoundaries(t *testing.T) {
	for _, p := range allProviders(t) {
		t.Run(p.Name(), func(t *testing.T) {
			assert.InDelta(t, 0.0, p.Acos(1), 1e-6)
			assert.InDelta(t, math.Pi, p.Acos(-1), 1e-6)
			assert.False(t, math.IsNaN(float64(p.Acos(1))))
			assert.False(t, math.IsNaN(float64(p.Acos(-1))))
		})
	}
}

func TestSqrtScenario(t *testing.T) {
	f := core.Fixture{W: 0.5, X: 0.3, Y: 0.7, Z: 1.5}
	want := []float64{0.5477, 0.8367, 1.2247}

	for _, p := range allProviders(t) {
		t.Run(p.Name(), func(t *testing.T) {
			got := []float32{p.Sqrt(f.X), p.Sqrt(f.Y), p.Sqrt(f.Z)}
			for i := range want {
				assert.InDelta(t, want[i], got[i], 1e-4)
			}
		})
	}
}

func TestProvidersAgree(t *testing.T) {
	providers := allProviders(t)
	ref := Std{}
	gen := core.NewGenerator(core.PolicySeeded, 11)

	for i := 0; i < 500; i++ {
		f := gen.Next()
		for _, p := range providers {
			assert.InDelta(t, ref.Acos(f.W), p.Acos(f.W), 1e-5, "%s acos %v", p.Name(), f)
			assert.InDelta(t, ref.Atan(f.Z), p.Atan(f.Z), 1e-5, "%s atan %v", p.Name(), f)
			assert.InDelta(t, ref.Cos(f.Z), p.Cos(f.Z), 1e-5, "%s cos %v", p.Name(), f)
			assert.InDelta(t, ref.Sin(f.Z), p.Sin(f.Z), 1e-5, "%s sin %v", p.Name(), f)
			assert.InEpsilon(t, ref.Exp(f.Z), p.Exp(f.Z), 1e-5, "%s exp %v", p.Name(), f)
			assert.InEpsilon(t, ref.Sqrt(f.Y), p.Sqrt(f.Y), 1e-5, "%s sqrt %v", p.Name(), f)
			assert.InEpsilon(t, ref.Pow(f.X, f.W), p.Pow(f.X, f.W), 1e-4, "%s pow %v", p.Name(), f)
		}
	}
}

func TestClampedOutOfDomain(t *testing.T) {
	c := Clamped{}
	assert.Equal(t, float32(0), c.Acos(1.5))
	assert.Equal(t, float32(math.Pi), c.Acos(-3))
	assert.Equal(t, float32(0), c.Sqrt(-4))

	// The unclamped provider lets the NaN through.
	assert.True(t, math.IsNaN(float64(Std{}.Sqrt(-4))))
}

func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds(nil)
	require.NoError(t, err)
	assert.Equal(t, AllKinds(), kinds)

	kinds, err = ParseKinds([]string{"MATH32", " std"})
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindMath32, KindStd}, kinds)

	_, err = ParseKinds([]string{"std", "std"})
	assert.Error(t, err)

	_, err = ParseKinds([]string{"commons"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestCreateProviderUnknown(t *testing.T) {
	_, err := NewDefaultFactory().CreateProvider("jme")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
