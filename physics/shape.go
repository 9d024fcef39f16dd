package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ShapeType identifies a collision shape implementation
type ShapeType string

const ShapeBox ShapeType = "box"

// DefaultDensity is used when mass is calculated from volume (kg/m^3)
const DefaultDensity = 1000

// Shape is a convex collision shape centred on the body origin
type Shape interface {
	Type() ShapeType
	Volume() float32
	// Inertia returns the diagonal of the local inertia tensor for mass m
	Inertia(m float32) mgl32.Vec3
}

// BoxShape is an axis-aligned box given by its half extents
type BoxShape struct {
	HalfExtent mgl32.Vec3
}

// NewBoxShape creates a cube with the given half extent
func (l *Library) NewBoxShape(halfExtent float32) (*BoxShape, error) {
	return l.NewBoxShapeExtents(mgl32.Vec3{halfExtent, halfExtent, halfExtent})
}

// NewBoxShapeExtents creates a box with per-axis half extents. The shape
// is counted by the library's allocator.
func (l *Library) NewBoxShapeExtents(halfExtent mgl32.Vec3) (*BoxShape, error) {
	for i, h := range halfExtent {
		if !(h > 0) {
			return nil, fmt.Errorf("%w: box half extent[%d] = %v", ErrInvalidSettings, i, h)
		}
	}
	if l.alloc != nil {
		l.alloc.shapes.Add(1)
	}
	return &BoxShape{HalfExtent: halfExtent}, nil
}

func (s *BoxShape) Type() ShapeType { return ShapeBox }

func (s *BoxShape) Volume() float32 {
	h := s.HalfExtent
	return 8 * h[0] * h[1] * h[2]
}

func (s *BoxShape) Inertia(m float32) mgl32.Vec3 {
	h := s.HalfExtent
	xx, yy, zz := h[0]*h[0], h[1]*h[1], h[2]*h[2]
	return mgl32.Vec3{yy + zz, xx + zz, xx + yy}.Mul(m / 3)
}
