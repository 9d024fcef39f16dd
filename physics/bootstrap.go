package physics

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// BoxPosition is where Bootstrap places the box body
var BoxPosition = mgl32.Vec3{1, 2, 3}

// Scene is the engine state shared, read-only, by the physics suite
type Scene struct {
	Library *Library
	System  *System
	Box     *Body
}

// Bootstrap initializes the library (once per process), builds a system
// with DefaultSettings and adds one active unit-mass box at BoxPosition.
func Bootstrap(logger *slog.Logger) (*Scene, error) {
	lib, err := Init(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load the physics library: %w", err)
	}

	sys, err := NewSystem(lib, DefaultSettings())
	if err != nil {
		return nil, fmt.Errorf("failed to create physics system: %w", err)
	}

	boxShape, err := lib.NewBoxShape(1)
	if err != nil {
		return nil, err
	}

	bcs := NewBodyCreationSettings(boxShape, BoxPosition)
	bcs.OverrideMassProperties = CalculateInertia
	bcs.MassPropertiesOverride.Mass = 1

	bi := sys.BodyInterface()
	box, err := bi.CreateBody(bcs)
	if err != nil {
		return nil, fmt.Errorf("failed to create box: %w", err)
	}
	if err := bi.AddBody(box, Activate); err != nil {
		return nil, fmt.Errorf("failed to add box: %w", err)
	}

	return &Scene{Library: lib, System: sys, Box: box}, nil
}
