package provider

import "math"

// Clamped is the game-engine flavour of Std: arguments just outside the
// domain of acos and sqrt are pinned to the nearest boundary instead of
// producing NaN.
type Clamped struct{}

func (Clamped) Name() string { return string(KindClamped) }

// Acos returns 0 for x >= 1 and Pi for x <= -1
func (Clamped) Acos(x float32) float32 {
	if x >= 1 {
		return 0
	}
	if x <= -1 {
		return math.Pi
	}
	return float32(math.Acos(float64(x)))
}

func (Clamped) Atan(x float32) float32 { return float32(math.Atan(float64(x))) }

func (Clamped) Cos(x float32) float32 { return float32(math.Cos(float64(x))) }

func (Clamped) Exp(x float32) float32 { return float32(math.Exp(float64(x))) }

func (Clamped) Sin(x float32) float32 { return float32(math.Sin(float64(x))) }

// Sqrt returns 0 for negative x
func (Clamped) Sqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}

func (Clamped) Pow(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }
