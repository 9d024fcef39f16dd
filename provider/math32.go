package provider

import "github.com/chewxy/math32"

// Math32 evaluates every function natively in single precision
type Math32 struct{}

func (Math32) Name() string { return string(KindMath32) }

func (Math32) Acos(x float32) float32 { return math32.Acos(x) }

func (Math32) Atan(x float32) float32 { return math32.Atan(x) }

func (Math32) Cos(x float32) float32 { return math32.Cos(x) }

func (Math32) Exp(x float32) float32 { return math32.Exp(x) }

func (Math32) Sin(x float32) float32 { return math32.Sin(x) }

func (Math32) Sqrt(x float32) float32 { return math32.Sqrt(x) }

func (Math32) Pow(x, y float32) float32 { return math32.Pow(x, y) }
