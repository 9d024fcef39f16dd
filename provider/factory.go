package provider

import "fmt"

// DefaultFactory creates providers by kind
type DefaultFactory struct{}

// NewDefaultFactory creates a new default provider factory
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{}
}

// CreateProvider returns the provider registered under kind
func (f *DefaultFactory) CreateProvider(kind Kind) (Provider, error) {
	switch kind {
	case KindStd:
		return Std{}, nil
	case KindClamped:
		return Clamped{}, nil
	case KindMath32:
		return Math32{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
