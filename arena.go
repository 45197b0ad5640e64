// Package arena implements a fixed-capacity bump allocator (memory arena).
// Typical usage: create one arena per frame or request, allocate many
// temporary objects from it, then Reset() at the end of the phase for
// O(1) cleanup.
package arena

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Arena is a fixed-capacity bump allocator. Not goroutine-safe: it is
// meant to be exclusively owned by one logical thread of control at a time.
type Arena struct {
	buf    []byte  // backing memory, base address 8-byte aligned
	offset uintptr // allocation cursor within buf
	gen    uint64  // bumped by Reset; captured by Ref handles
}

// New creates an Arena owning exactly capacity bytes.
// It fails with ErrInvalidCapacity when capacity is not positive, and with
// ErrAllocationFailed when the runtime cannot supply the backing buffer.
func New(capacity int) (a *Arena, err error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "%d bytes requested", capacity)
	}
	defer func() {
		if r := recover(); r != nil {
			a, err = nil, errors.Wrapf(ErrAllocationFailed, "reserving %d bytes: %v", capacity, r)
		}
	}()
	// Carve the buffer out of uint64 storage so the base address is
	// 8-byte aligned. Offset alignment then equals address alignment for
	// every Go type (unsafe.Alignof never exceeds 8).
	words := make([]uint64, (capacity-1)/8+1)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), capacity)
	return &Arena{buf: buf}, nil
}

// alloc reserves size bytes starting at the next align-aligned cursor
// position. align must be a power of two. A zero-sized request succeeds
// without moving the cursor.
func (a *Arena) alloc(size, align uintptr) (unsafe.Pointer, error) {
	a.panicIfReleased()
	if size == 0 {
		return unsafe.Pointer(&a.buf[0]), nil
	}
	off := alignUp(a.offset, align)
	// Compare against the free space rather than computing off+size, which
	// can wrap for sizes near the uintptr maximum.
	if off > uintptr(len(a.buf)) || size > uintptr(len(a.buf))-off {
		return nil, errors.Wrapf(ErrOutOfMemory, "%d bytes (align %d) requested, %d of %d remaining",
			size, align, a.Remaining(), len(a.buf))
	}
	p := unsafe.Pointer(&a.buf[off])
	a.offset = off + size
	return p, nil
}

// AllocBytes returns a []byte slice pointing into the arena's buffer.
// The bytes are uninitialized. The caller must ensure the arena remains
// reachable while the returned slice is in use, and must not use the slice
// after Reset. Returns nil without error if n <= 0.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	p, err := a.alloc(uintptr(n), 1)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(p), n), nil
}

// Reset rewinds the cursor to zero, making the full capacity available
// again. This is O(1): buffer contents are not zeroed and no per-object
// cleanup runs. Every pointer previously returned by an allocation becomes
// invalid and must not be dereferenced afterwards.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.offset = 0
	a.gen++
}

// Release drops the backing buffer and makes the arena unusable.
// Any subsequent allocation or Reset will panic.
func (a *Arena) Release() {
	a.buf = nil
	a.offset = 0
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic("arena: use after Release()")
	}
}

// alignUp rounds off up to the next multiple of align.
// align must be a power of two.
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) &^ mask
}
