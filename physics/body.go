package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// BodyID identifies a body within its System
type BodyID uint32

// ObjectLayer selects which broad-phase layer a body belongs to
type ObjectLayer uint16

// BroadPhaseLayer groups object layers for coarse collision filtering
type BroadPhaseLayer uint8

// MotionType controls how a body moves
type MotionType int

const (
	MotionStatic MotionType = iota
	MotionKinematic
	MotionDynamic
)

// Activation controls whether AddBody wakes the body
type Activation int

const (
	Activate Activation = iota
	DontActivate
)

// OverrideMassProperties selects how mass and inertia are derived
type OverrideMassProperties int

const (
	// CalculateMassAndInertia derives both from the shape at DefaultDensity
	CalculateMassAndInertia OverrideMassProperties = iota
	// CalculateInertia uses the override mass and derives inertia from the shape
	CalculateInertia
	// MassAndInertiaProvided uses the override values as given
	MassAndInertiaProvided
)

// MassProperties holds a body's mass and diagonal inertia
type MassProperties struct {
	Mass    float32
	Inertia mgl32.Vec3
}

// BodyCreationSettings describes a body to be created
type BodyCreationSettings struct {
	Shape                  Shape
	Position               mgl32.Vec3
	Rotation               mgl32.Quat
	MotionType             MotionType
	ObjectLayer            ObjectLayer
	OverrideMassProperties OverrideMassProperties
	MassPropertiesOverride MassProperties
}

// NewBodyCreationSettings returns settings for a dynamic body with identity
// rotation
func NewBodyCreationSettings(shape Shape, position mgl32.Vec3) BodyCreationSettings {
	return BodyCreationSettings{
		Shape:      shape,
		Position:   position,
		Rotation:   mgl32.QuatIdent(),
		MotionType: MotionDynamic,
	}
}

// massProperties resolves the override policy
func (s *BodyCreationSettings) massProperties() (MassProperties, error) {
	switch s.OverrideMassProperties {
	case CalculateMassAndInertia:
		m := DefaultDensity * s.Shape.Volume()
		return MassProperties{Mass: m, Inertia: s.Shape.Inertia(m)}, nil
	case CalculateInertia:
		m := s.MassPropertiesOverride.Mass
		if !(m > 0) {
			return MassProperties{}, fmt.Errorf("%w: mass override %v", ErrInvalidSettings, m)
		}
		return MassProperties{Mass: m, Inertia: s.Shape.Inertia(m)}, nil
	case MassAndInertiaProvided:
		mp := s.MassPropertiesOverride
		if !(mp.Mass > 0) {
			return MassProperties{}, fmt.Errorf("%w: mass override %v", ErrInvalidSettings, mp.Mass)
		}
		return mp, nil
	default:
		return MassProperties{}, fmt.Errorf("%w: mass override mode %d", ErrInvalidSettings, s.OverrideMassProperties)
	}
}

// Body is a rigid body owned by a System
type Body struct {
	id       BodyID
	shape    Shape
	motion   MotionType
	layer    ObjectLayer
	position mgl32.Vec3
	rotation mgl32.Quat
	mass     MassProperties
	added    bool
	active   bool
}

// ID returns the body identifier
func (b *Body) ID() BodyID { return b.id }

// Shape returns the collision shape
func (b *Body) Shape() Shape { return b.shape }

// MotionType returns how the body moves
func (b *Body) MotionType() MotionType { return b.motion }

// ObjectLayer returns the body's layer
func (b *Body) ObjectLayer() ObjectLayer { return b.layer }

// Position returns the centre of mass in world space
func (b *Body) Position() mgl32.Vec3 { return b.position }

// Rotation returns the body orientation as a unit quaternion
func (b *Body) Rotation() mgl32.Quat { return b.rotation }

// MassProperties returns the resolved mass and inertia
func (b *Body) MassProperties() MassProperties { return b.mass }

// IsAdded reports whether the body is in the system
func (b *Body) IsAdded() bool { return b.added }

// IsActive reports whether the body was added awake
func (b *Body) IsActive() bool { return b.active }
