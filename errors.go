package arena

import "github.com/pkg/errors"

// Errors returned by arena operations. Returned errors may carry extra
// context but always unwrap to one of these sentinels, so callers can
// match with errors.Is.
var (
	// ErrInvalidCapacity is returned by New when the requested capacity
	// is not positive.
	ErrInvalidCapacity = errors.New("arena: invalid capacity")

	// ErrAllocationFailed is returned by New when the backing buffer
	// cannot be obtained from the runtime.
	ErrAllocationFailed = errors.New("arena: backing allocation failed")

	// ErrOutOfMemory is returned by allocation operations when the arena
	// lacks sufficient remaining capacity for the request, including any
	// alignment padding. It is recoverable: Reset makes the full capacity
	// available again, and the arena itself is left in a consistent state.
	ErrOutOfMemory = errors.New("arena: out of memory")
)
