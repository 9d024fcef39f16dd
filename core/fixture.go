package core

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// Policy selects how a Generator produces fixture values
type Policy string

const (
	// PolicySeeded draws every fixture from a PCG stream keyed by the seed
	PolicySeeded Policy = "seeded"
	// PolicyFixed returns the same representative constants for every trial
	PolicyFixed Policy = "fixed"
)

// Field domains. Every fixture handed to a benchmark lies inside them.
//
//	W  [-1, 1]  acos, atan, cos, exp, sin, pow exponent
//	X  (0, 1]   acos, atan, cos, exp, sin, sqrt, pow base and exponent
//	Y  (0, 1]   same consumers as X
//	Z  [0, 4)   atan, cos, exp, sin, sqrt, pow base
//
// X and Y feed both acos and sqrt, so they live in the intersection of the
// two domains. Zero is excluded because X is raised to W, which may be negative.
const (
	zSpan = 4
)

// FixedFixture is the fixture returned by PolicyFixed
var FixedFixture = Fixture{W: 0.5, X: 0.3, Y: 0.7, Z: 1.5}

// Fixture is the bundle of input scalars shared by all invocations in a trial.
// It is never mutated once generated.
type Fixture struct {
	W float32 `json:"w" yaml:"w"`
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// Validate reports the first field outside its domain
func (f Fixture) Validate() error {
	// Written as negated ranges so NaN fails too.
	if !(f.W >= -1 && f.W <= 1) {
		return fmt.Errorf("%w: w=%v not in [-1, 1]", ErrDomain, f.W)
	}
	if !(f.X > 0 && f.X <= 1) {
		return fmt.Errorf("%w: x=%v not in (0, 1]", ErrDomain, f.X)
	}
	if !(f.Y > 0 && f.Y <= 1) {
		return fmt.Errorf("%w: y=%v not in (0, 1]", ErrDomain, f.Y)
	}
	if !(f.Z >= 0 && f.Z < zSpan) {
		return fmt.Errorf("%w: z=%v not in [0, %d)", ErrDomain, f.Z, zSpan)
	}
	return nil
}

// Bits returns the raw IEEE-754 encoding of w, x, y, z
func (f Fixture) Bits() [4]uint32 {
	return [4]uint32{
		math.Float32bits(f.W),
		math.Float32bits(f.X),
		math.Float32bits(f.Y),
		math.Float32bits(f.Z),
	}
}

// String implements fmt.Stringer
func (f Fixture) String() string {
	return fmt.Sprintf("{w=%g x=%g y=%g z=%g}", f.W, f.X, f.Y, f.Z)
}

// Generator produces a reproducible sequence of fixtures.
// The sequence depends only on the policy and the seed.
type Generator struct {
	policy Policy
	seed   uint64
	src    *rand.PCG
}

// NewGenerator creates a generator for the given policy and seed
func NewGenerator(policy Policy, seed uint64) *Generator {
	return &Generator{
		policy: policy,
		seed:   seed,
		src:    rand.NewPCG(seed, seed^pcgStream),
	}
}

// pcgStream separates the second PCG word from the seed
const pcgStream = 0x9e3779b97f4a7c15

// Policy returns the generator's policy
func (g *Generator) Policy() Policy {
	return g.policy
}

// Seed returns the generator's seed
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Reset rewinds the generator to its first fixture
func (g *Generator) Reset() {
	g.src.Seed(g.seed, g.seed^pcgStream)
}

// Next returns the fixture for the next trial
func (g *Generator) Next() Fixture {
	if g.policy == PolicyFixed {
		return FixedFixture
	}

	return Fixture{
		W: 2*g.unit() - 1,
		X: 1 - g.unit(),
		Y: 1 - g.unit(),
		Z: zSpan * g.unit(),
	}
}

// Sequence returns the next n fixtures
func (g *Generator) Sequence(n int) []Fixture {
	fixtures := make([]Fixture, n)
	for i := range fixtures {
		fixtures[i] = g.Next()
	}
	return fixtures
}

// unit returns a float32 in [0, 1) with 24 random mantissa bits.
// Built from raw PCG output so the sequence does not depend on how
// math/rand/v2 maps integers to floats.
func (g *Generator) unit() float32 {
	return float32(g.src.Uint64()>>40) / (1 << 24)
}

// ParsePolicy converts a configuration string to a Policy
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicySeeded, "":
		return PolicySeeded, nil
	case PolicyFixed:
		return PolicyFixed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}
