package arena

// Ref is a generation-checked handle to a value allocated from an Arena.
// The arena's generation advances on every Reset, so a Ref held across a
// Reset (or Release) is detectably stale: Get panics instead of returning
// a pointer into reused memory. This trades one comparison per dereference
// for catching use-after-reset bugs; hot paths that cannot afford it
// should use Alloc directly.
//
// The zero Ref is invalid.
type Ref[T any] struct {
	ptr   *T
	arena *Arena
	gen   uint64
}

// AllocRef reserves space for one T like Alloc and binds the handle to the
// arena's current generation. The memory is uninitialized.
func AllocRef[T any](a *Arena) (Ref[T], error) {
	p, err := Alloc[T](a)
	if err != nil {
		return Ref[T]{}, err
	}
	return Ref[T]{ptr: p, arena: a, gen: a.gen}, nil
}

// Valid reports whether the handle still refers to live arena memory,
// i.e. the arena has been neither Reset nor Released since AllocRef.
func (r Ref[T]) Valid() bool {
	return r.arena != nil && r.arena.buf != nil && r.arena.gen == r.gen
}

// Get returns the underlying pointer. It panics if the handle is stale;
// a stale dereference is a logic error in the caller, not a recoverable
// condition.
func (r Ref[T]) Get() *T {
	if !r.Valid() {
		panic("arena: stale Ref dereferenced after Reset or Release")
	}
	return r.ptr
}
