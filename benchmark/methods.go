package benchmark

import (
	"github.com/dshills/ubench/core"
	"github.com/dshills/ubench/provider"
)

//go:generate go run gen_methods.go

// Benchmark methods. Each reads the fixture, computes its results in a
// fixed order and hands every result to the sink on its own. The bodies are
// flat: no loops, no branches, no aggregation.
//
// These generic forms accept any provider and sink. Go shares one
// instantiation between providers of the same underlying type, so calls
// through p and hole are indirect here; the built-in providers are timed
// through the generated copies in methods_gen.go instead.

// Acos measures single-precision arc cosines of w, x and y
func Acos[P provider.Provider, S core.Sink](p P, hole S, data *core.Fixture) {
	ww := p.Acos(data.W)
	hole.Consume(ww)
	xx := p.Acos(data.X)
	hole.Consume(xx)
	yy := p.Acos(data.Y)
	hole.Consume(yy)
}

// Atan measures single-precision arc tangents
func Atan[P provider.Provider, S core.Sink](p P, hole S, data *core.Fixture) {
	ww := p.Atan(data.W)
	hole.Consume(ww)
	xx := p.Atan(data.X)
	hole.Consume(xx)
	yy := p.Atan(data.Y)
	hole.Consume(yy)
	zz := p.Atan(data.Z)
	hole.Consume(zz)
}

// Cos measures single-precision cosines
func Cos[P provider.Provider, S core.Sink](p P, hole S, data *core.Fixture) {
	ww := p.Cos(data.W)
	hole.Consume(ww)
	xx := p.Cos(data.X)
	hole.Consume(xx)
	yy := p.Cos(data.Y)
	hole.Consume(yy)
	zz := p.Cos(data.Z)
	hole.Consume(zz)
}

// Exp measures single-precision exponentials
func Exp[P provider.Provider, S core.Sink](p P, hole S, data *core.Fixture) {
	ww := p.Exp(data.W)
	hole.Consume(ww)
	xx := p.Exp(data.X)
	hole.Consume(xx)
	yy := p.Exp(data.Y)
	hole.Consume(yy)
	zz := p.Exp(data.Z)
	hole.Consume(zz)
}

// Pow measures single-precision powers x^w, y^x and z^y
func Pow[P provider.Provider, S core.Sink](p P, hole S, data *core.Fixture) {
	xw := p.Pow(data.X, data.W)
	hole.Consume(xw)
	yx := p.Pow(data.Y, data.X)
	hole.Consume(yx)
	zy := p.Pow(data.Z, data.Y)
	hole.Consume(zy)
}

// Sin measures single-precision sines
func Sin[P provider.Provider, S core.Sink](p P, hole S, data *core.Fixture) {
	ww := p.Sin(data.W)
	hole.Consume(ww)
	xx := p.Sin(data.X)
	hole.Consume(xx)
	yy := p.Sin(data.Y)
	hole.Consume(yy)
	zz := p.Sin(data.Z)
	hole.Consume(zz)
}

// Sqrt measures single-precision square roots of x, y and z.
// w may be negative and is never passed to sqrt.
func Sqrt[P provider.Provider, S core.Sink](p P, hole S, data *core.Fixture) {
	xx := p.Sqrt(data.X)
	hole.Consume(xx)
	yy := p.Sqrt(data.Y)
	hole.Consume(yy)
	zz := p.Sqrt(data.Z)
	hole.Consume(zz)
}
