package arena

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Alloc reserves space for one value of type T and returns a pointer into
// the arena, aligned for T. The memory is NOT initialized: the caller must
// write a valid T through the pointer before reading it. This contract is
// not checked - use AllocZeroed when in doubt.
// Fails with ErrOutOfMemory when the value does not fit in the remaining
// capacity, including alignment padding.
func Alloc[T any](a *Arena) (*T, error) {
	var zero T
	p, err := a.alloc(unsafe.Sizeof(zero), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return (*T)(p), nil
}

// AllocZeroed reserves space for one T like Alloc and zeroes it before
// returning. Slower than Alloc but safe to read immediately.
func AllocZeroed[T any](a *Arena) (*T, error) {
	p, err := Alloc[T](a)
	if err != nil {
		return nil, err
	}
	var zero T
	*p = zero
	return p, nil
}

// AllocSlice reserves space for a slice of n elements of type T inside the
// arena. The elements are not initialized (contain garbage data).
// Returns nil without error if n <= 0.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	total := elemSize * uintptr(n)
	if elemSize != 0 && total/elemSize != uintptr(n) {
		return nil, errors.Wrapf(ErrOutOfMemory, "%d elements of %d bytes overflow", n, elemSize)
	}
	p, err := a.alloc(total, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(p), n), nil
}

// AllocSliceZeroed reserves a slice of n elements of type T with zeroed
// memory. Slower than AllocSlice but ensures clean initialization.
func AllocSliceZeroed[T any](a *Arena, n int) ([]T, error) {
	s, err := AllocSlice[T](a, n)
	if err != nil {
		return nil, err
	}
	clear(s)
	return s, nil
}
