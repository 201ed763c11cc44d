package simplelru

import "errors"

var (
	// ErrInvalidArgument is returned when a caller passes a value the cache
	// refuses to store: a non-positive size, or a nil key or value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState is returned when an internal invariant is broken, such
	// as evicting from an empty cache. It indicates a defect in the cache.
	ErrIllegalState = errors.New("illegal state")
)
