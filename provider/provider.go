// Package provider exposes interchangeable single-precision scalar math
// libraries behind one call-site shape so that the same fixture can drive
// comparative benchmarks.
package provider

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned for provider names that are not registered
var ErrUnknownKind = errors.New("unknown provider kind")

// Provider is the capability set exercised by the math suite
type Provider interface {
	Name() string
	Acos(x float32) float32
	Atan(x float32) float32
	Cos(x float32) float32
	Exp(x float32) float32
	Sin(x float32) float32
	Sqrt(x float32) float32
	Pow(x, y float32) float32
}

// Kind names a concrete provider
type Kind string

const (
	KindStd     Kind = "std"
	KindClamped Kind = "clamped"
	KindMath32  Kind = "math32"
)

// AllKinds lists every provider in report order
func AllKinds() []Kind {
	return []Kind{KindStd, KindClamped, KindMath32}
}

// ParseKind converts a configuration string to a Kind
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllKinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParseKinds converts a list of names, rejecting duplicates.
// An empty list selects every provider.
func ParseKinds(names []string) ([]Kind, error) {
	if len(names) == 0 {
		return AllKinds(), nil
	}

	seen := make(map[Kind]bool, len(names))
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		if seen[k] {
			return nil, fmt.Errorf("duplicate provider: %s", k)
		}
		seen[k] = true
		kinds = append(kinds, k)
	}
	return kinds, nil
}
