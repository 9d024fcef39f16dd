package core

import "errors"

// Common errors
var (
	ErrDomain        = errors.New("value outside function domain")
	ErrNonFinite     = errors.New("non-finite result")
	ErrInvalidPolicy = errors.New("invalid fixture policy")
)
