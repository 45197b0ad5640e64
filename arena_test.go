package arena

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  error
	}{
		{"zero capacity", 0, ErrInvalidCapacity},
		{"negative capacity", -1, ErrInvalidCapacity},
		{"one byte", 1, nil},
		{"typical capacity", 1024, nil},
		{"odd capacity", 1021, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.capacity)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New(%d) error = %v, want %v", tt.capacity, err, tt.wantErr)
				}
				if a != nil {
					t.Errorf("New(%d) = %v, want nil arena on error", tt.capacity, a)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d) unexpected error: %v", tt.capacity, err)
			}
			if a.Cap() != tt.capacity {
				t.Errorf("Cap() = %d, want %d", a.Cap(), tt.capacity)
			}
			if a.Remaining() != tt.capacity {
				t.Errorf("Remaining() = %d, want %d", a.Remaining(), tt.capacity)
			}
			if a.Used() != 0 {
				t.Errorf("Used() = %d, want 0", a.Used())
			}
		})
	}
}

func TestNewAllocationFailed(t *testing.T) {
	// A request this large exceeds the address space, which the runtime
	// rejects with a recoverable makeslice panic.
	_, err := New(math.MaxInt)
	if !errors.Is(err, ErrAllocationFailed) {
		t.Fatalf("New(MaxInt) error = %v, want %v", err, ErrAllocationFailed)
	}
}

func TestArenaAllocBytes(t *testing.T) {
	a, err := New(1024)
	if err != nil {
		t.Fatal(err)
	}

	// Normal allocation
	b1, err := a.AllocBytes(100)
	if err != nil {
		t.Fatalf("AllocBytes(100) error: %v", err)
	}
	if len(b1) != 100 {
		t.Errorf("AllocBytes(100) length = %d, want 100", len(b1))
	}
	if a.Used() != 100 {
		t.Errorf("Used() = %d, want 100", a.Used())
	}

	// Zero and negative requests succeed with a nil slice
	b2, err := a.AllocBytes(0)
	if err != nil || b2 != nil {
		t.Errorf("AllocBytes(0) = %v, %v, want nil, nil", b2, err)
	}
	b3, err := a.AllocBytes(-1)
	if err != nil || b3 != nil {
		t.Errorf("AllocBytes(-1) = %v, %v, want nil, nil", b3, err)
	}

	// Exact fit for the rest of the buffer
	b4, err := a.AllocBytes(924)
	if err != nil {
		t.Fatalf("AllocBytes(924) error: %v", err)
	}
	if len(b4) != 924 {
		t.Errorf("AllocBytes(924) length = %d, want 924", len(b4))
	}
	if a.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", a.Remaining())
	}

	// Arena is full now
	if _, err := a.AllocBytes(1); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("AllocBytes(1) on full arena error = %v, want %v", err, ErrOutOfMemory)
	}
}

func TestArenaNeverGrows(t *testing.T) {
	a, err := New(64)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := a.AllocBytes(65); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("AllocBytes(65) error = %v, want %v", err, ErrOutOfMemory)
	}
	// A failed allocation must not corrupt the cursor.
	if a.Used() != 0 {
		t.Errorf("Used() after failed allocation = %d, want 0", a.Used())
	}
	if _, err := a.AllocBytes(64); err != nil {
		t.Errorf("AllocBytes(64) after failed allocation error: %v", err)
	}
}

func TestArenaReset(t *testing.T) {
	a, err := New(1024)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := a.AllocBytes(100); err != nil {
		t.Fatal(err)
	}
	if _, err := a.AllocBytes(200); err != nil {
		t.Fatal(err)
	}
	if a.Used() == 0 {
		t.Error("Expected non-zero Used() after allocations")
	}

	a.Reset()
	if a.Used() != 0 {
		t.Errorf("Used() after Reset() = %d, want 0", a.Used())
	}
	if a.Remaining() != a.Cap() {
		t.Errorf("Remaining() after Reset() = %d, want %d", a.Remaining(), a.Cap())
	}

	// Reset is idempotent
	a.Reset()
	if a.Used() != 0 || a.Remaining() != a.Cap() {
		t.Errorf("double Reset() left Used=%d Remaining=%d, want 0 and %d",
			a.Used(), a.Remaining(), a.Cap())
	}

	// Full capacity is available again
	if _, err := a.AllocBytes(1024); err != nil {
		t.Errorf("AllocBytes(1024) after Reset() error: %v", err)
	}
}

func TestArenaRelease(t *testing.T) {
	a, err := New(1024)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.AllocBytes(100); err != nil {
		t.Fatal(err)
	}

	a.Release()

	if a.buf != nil {
		t.Error("Expected buf to be nil after Release()")
	}
	if a.Cap() != 0 || a.Used() != 0 {
		t.Errorf("Cap()=%d Used()=%d after Release(), want 0 and 0", a.Cap(), a.Used())
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on use after Release()")
		}
	}()
	a.AllocBytes(100)
}

func TestResetAfterReleasePanics(t *testing.T) {
	a, err := New(16)
	if err != nil {
		t.Fatal(err)
	}
	a.Release()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on Reset() after Release()")
		}
	}()
	a.Reset()
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		off      uintptr
		align    uintptr
		expected uintptr
	}{
		{0, 1, 0},
		{5, 1, 5},
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{3, 4, 4},
		{12, 4, 12},
	}

	for _, tt := range tests {
		result := alignUp(tt.off, tt.align)
		if result != tt.expected {
			t.Errorf("alignUp(%d, %d) = %d, want %d", tt.off, tt.align, result, tt.expected)
		}
	}
}
