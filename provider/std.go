package provider

import "math"

// Std evaluates every function with the standard library in double
// precision and narrows the result.
type Std struct{}

func (Std) Name() string { return string(KindStd) }

func (Std) Acos(x float32) float32 { return float32(math.Acos(float64(x))) }

func (Std) Atan(x float32) float32 { return float32(math.Atan(float64(x))) }

func (Std) Cos(x float32) float32 { return float32(math.Cos(float64(x))) }

func (Std) Exp(x float32) float32 { return float32(math.Exp(float64(x))) }

func (Std) Sin(x float32) float32 { return float32(math.Sin(float64(x))) }

func (Std) Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func (Std) Pow(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }
