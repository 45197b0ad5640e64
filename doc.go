// Package arena implements a fixed-capacity bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena allocator hands out correctly-aligned portions of one
// preallocated buffer by advancing a cursor, and reclaims everything at
// once by rewinding it. This is particularly useful for:
//
//   - Per-frame or per-request allocation with batch cleanup
//   - Temporary object graphs whose individual lifetimes do not matter
//   - Reducing garbage collection pressure
//   - Workloads that need a hard, predictable memory ceiling
//
// # Basic Usage
//
//	a, err := arena.New(64 << 10) // 64 KiB arena
//	if err != nil {
//		return err
//	}
//	defer a.Release() // Clean up when done
//
//	// Allocate raw bytes
//	buf, err := a.AllocBytes(1024)
//
//	// Allocate typed values
//	ptr, err := arena.Alloc[MyStruct](a)
//	slice, err := arena.AllocSlice[int](a, 100)
//
//	// Reset for reuse (O(1) operation)
//	a.Reset()
//
// # Capacity
//
// The arena never grows. When a request does not fit in the remaining
// capacity (including alignment padding), allocation fails with
// ErrOutOfMemory. That is an ordinary, recoverable condition: Reset the
// arena, use a larger one, or fail the enclosing operation.
//
// # Thread Safety
//
// Arena is not thread-safe and performs no locking. It is designed for
// exclusive ownership by one logical thread of control at a time;
// concurrent use without external synchronization is undefined.
//
// # Important Notes
//
//   - Alloc and AllocSlice return uninitialized memory. Write a valid value
//     before reading, or use the Zeroed variants.
//   - No individual deallocation - use Reset() or Release() for bulk cleanup
//   - Reset invalidates every pointer previously handed out. Dereferencing
//     one afterwards is a bug the arena cannot detect; use Ref to catch it
//     in non-performance-critical code.
//   - Proper alignment is maintained for all allocations
//
// # Monitoring
//
// Stats returns a snapshot of arena state, and Collector exposes published
// snapshots as Prometheus metrics:
//
//	stats := a.Stats()
//	fmt.Printf("Utilization: %.2f%%\n", stats.Utilization*100)
//	fmt.Printf("Memory in use: %d bytes\n", stats.Used)
package arena
