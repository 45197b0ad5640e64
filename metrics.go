package arena

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Used returns the number of bytes currently allocated in the arena.
// This includes internal fragmentation due to alignment padding.
func (a *Arena) Used() int {
	return int(a.offset)
}

// Remaining returns the number of bytes still available for allocation.
func (a *Arena) Remaining() int {
	return len(a.buf) - int(a.offset)
}

// Cap returns the total capacity of the arena in bytes.
// Returns 0 for a released arena.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 for a released arena.
func (a *Arena) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.offset) / float64(len(a.buf))
}

// Resets returns the number of times the arena has been reset.
func (a *Arena) Resets() uint64 {
	return a.gen
}

// Stats contains statistical information about an arena.
type Stats struct {
	Used        int     // Bytes currently allocated
	Remaining   int     // Bytes still available
	Capacity    int     // Total capacity in bytes
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
	Resets      uint64  // Number of times the arena has been reset
}

// Stats returns a snapshot of arena statistics.
func (a *Arena) Stats() Stats {
	return Stats{
		Used:        a.Used(),
		Remaining:   a.Remaining(),
		Capacity:    a.Cap(),
		Utilization: a.Utilization(),
		Resets:      a.Resets(),
	}
}

// String renders the snapshot in human-readable form.
func (s Stats) String() string {
	return fmt.Sprintf("%s used / %s capacity (%.1f%%), %d resets",
		humanize.IBytes(uint64(s.Used)), humanize.IBytes(uint64(s.Capacity)),
		s.Utilization*100, s.Resets)
}
