package physics

import "errors"

// Common errors
var (
	ErrNotInitialized    = errors.New("physics library not initialized")
	ErrFactoryExists     = errors.New("physics factory already exists")
	ErrNoFactory         = errors.New("physics factory not created")
	ErrUnregisteredShape = errors.New("shape type not registered")
	ErrInvalidSettings   = errors.New("invalid physics settings")
	ErrTooManyBodies     = errors.New("body capacity exhausted")
	ErrBodyNotFound      = errors.New("body not found")
	ErrBodyAlreadyAdded  = errors.New("body already added")
)
