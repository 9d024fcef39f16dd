package physics

import (
	"fmt"
	"math"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
)

// Settings are the capacity parameters of a System
type Settings struct {
	MaxBodies      int
	NumBodyMutexes int // 0 selects a default
	MaxBodyPairs   int
	MaxContacts    int
	// ObjectToBroadPhase maps each object layer to its broad-phase layer
	ObjectToBroadPhase  []BroadPhaseLayer
	NumBroadPhaseLayers int
}

// DefaultSettings returns the fixed capacities used by the physics suite
func DefaultSettings() Settings {
	return Settings{
		MaxBodies:           1_800,
		NumBodyMutexes:      0,
		MaxBodyPairs:        65_536,
		MaxContacts:         20_480,
		ObjectToBroadPhase:  []BroadPhaseLayer{0},
		NumBroadPhaseLayers: 1,
	}
}

// Validate checks the settings for consistency
func (s Settings) Validate() error {
	if s.MaxBodies <= 0 {
		return fmt.Errorf("%w: max bodies %d", ErrInvalidSettings, s.MaxBodies)
	}
	if s.NumBodyMutexes < 0 {
		return fmt.Errorf("%w: body mutexes %d", ErrInvalidSettings, s.NumBodyMutexes)
	}
	if s.MaxBodyPairs <= 0 || s.MaxContacts <= 0 {
		return fmt.Errorf("%w: body pairs %d, contacts %d", ErrInvalidSettings, s.MaxBodyPairs, s.MaxContacts)
	}
	if len(s.ObjectToBroadPhase) == 0 || s.NumBroadPhaseLayers <= 0 {
		return fmt.Errorf("%w: no layers configured", ErrInvalidSettings)
	}
	for obj, bp := range s.ObjectToBroadPhase {
		if int(bp) >= s.NumBroadPhaseLayers {
			return fmt.Errorf("%w: object layer %d maps to broad-phase layer %d of %d",
				ErrInvalidSettings, obj, bp, s.NumBroadPhaseLayers)
		}
	}
	return nil
}

// System owns the simulated bodies. It is not safe for concurrent use.
type System struct {
	lib         *Library
	settings    Settings
	bodyMutexes int
	bodies      []*Body
	iface       *BodyInterface
}

// NewSystem creates a physics system; Init must have succeeded first
func NewSystem(lib *Library, settings Settings) (*System, error) {
	if lib == nil {
		return nil, ErrNotInitialized
	}
	if lib.factory == nil {
		return nil, ErrNoFactory
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	sys := &System{
		lib:         lib,
		settings:    settings,
		bodyMutexes: resolveBodyMutexes(settings.NumBodyMutexes),
		bodies:      make([]*Body, 0, min(settings.MaxBodies, 64)),
	}
	sys.iface = &BodyInterface{sys: sys}

	lib.Trace(fmt.Sprintf("system created: max bodies %d, body pairs %d, contacts %d, mutexes %d",
		settings.MaxBodies, settings.MaxBodyPairs, settings.MaxContacts, sys.bodyMutexes))
	return sys, nil
}

// resolveBodyMutexes picks a power of two near the CPU count, capped at 64
func resolveBodyMutexes(n int) int {
	if n > 0 {
		return n
	}
	m := 1
	for m < runtime.NumCPU() && m < 64 {
		m <<= 1
	}
	return m
}

// Settings returns the system's capacity parameters
func (s *System) Settings() Settings {
	return s.settings
}

// BodyMutexes returns the resolved body mutex count
func (s *System) BodyMutexes() int {
	return s.bodyMutexes
}

// BodyInterface returns the interface used to create and query bodies
func (s *System) BodyInterface() *BodyInterface {
	return s.iface
}

// NumBodies returns the number of bodies created
func (s *System) NumBodies() int {
	return len(s.bodies)
}

// BodyInterface creates, adds and queries bodies of one System
type BodyInterface struct {
	sys *System
}

// CreateBody creates a body without adding it to the simulation
func (bi *BodyInterface) CreateBody(settings BodyCreationSettings) (*Body, error) {
	sys := bi.sys
	if settings.Shape == nil {
		return nil, fmt.Errorf("%w: nil shape", ErrInvalidSettings)
	}
	if !sys.lib.factory.IsRegistered(settings.Shape.Type()) {
		return nil, fmt.Errorf("%w: %s", ErrUnregisteredShape, settings.Shape.Type())
	}
	if int(settings.ObjectLayer) >= len(sys.settings.ObjectToBroadPhase) {
		return nil, fmt.Errorf("%w: object layer %d", ErrInvalidSettings, settings.ObjectLayer)
	}
	if len(sys.bodies) >= sys.settings.MaxBodies {
		return nil, fmt.Errorf("%w: %d bodies", ErrTooManyBodies, sys.settings.MaxBodies)
	}

	mass, err := settings.massProperties()
	if err != nil {
		return nil, err
	}

	rotation := settings.Rotation
	if rotation.Len() == 0 {
		rotation = mgl32.QuatIdent()
	}
	rotation = rotation.Normalize()
	sys.lib.check(math.Abs(float64(rotation.Len())-1) < 1e-3,
		"|rotation| == 1", fmt.Sprintf("body rotation %v is not a finite orientation", settings.Rotation))

	body := &Body{
		id:       BodyID(len(sys.bodies)),
		shape:    settings.Shape,
		motion:   settings.MotionType,
		layer:    settings.ObjectLayer,
		position: settings.Position,
		rotation: rotation,
		mass:     mass,
	}
	sys.bodies = append(sys.bodies, body)
	if alloc := sys.lib.alloc; alloc != nil {
		alloc.bodies.Add(1)
	}
	return body, nil
}

// AddBody inserts a created body into the system
func (bi *BodyInterface) AddBody(body *Body, activation Activation) error {
	if body == nil || !bi.owns(body) {
		return ErrBodyNotFound
	}
	if body.added {
		return fmt.Errorf("%w: %d", ErrBodyAlreadyAdded, body.id)
	}
	body.added = true
	body.active = activation == Activate && body.motion != MotionStatic
	return nil
}

// GetRotation returns the orientation of the body with the given ID, or
// the identity rotation if there is no such body
func (bi *BodyInterface) GetRotation(id BodyID) mgl32.Quat {
	if int(id) >= len(bi.sys.bodies) {
		return mgl32.QuatIdent()
	}
	return bi.sys.bodies[id].rotation
}

func (bi *BodyInterface) owns(body *Body) bool {
	return int(body.id) < len(bi.sys.bodies) && bi.sys.bodies[body.id] == body
}
