package status

import (
	"sync"
	"testing"
)

// TestMetricMapGetIsStable tests that repeated lookups return the same pointer
func TestMetricMapGetIsStable(t *testing.T) {
	reg := NewRegistry()

	a := reg.Ints.Get(KeyTicks)
	b := reg.Ints.Get(KeyTicks)
	if a != b {
		t.Fatal("Expected same pointer for repeated Get")
	}

	a.Add(3)
	if got := reg.Ints.Get(KeyTicks).Load(); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

// TestMetricMapConcurrentGet tests concurrent first-use registration
func TestMetricMapConcurrentGet(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Ints.Get(KeyFrames).Add(1)
		}()
	}
	wg.Wait()

	if got := reg.Ints.Get(KeyFrames).Load(); got != 50 {
		t.Errorf("Expected 50, got %d", got)
	}
	if reg.Ints.Count() != 1 {
		t.Errorf("Expected 1 registered metric, got %d", reg.Ints.Count())
	}
}

// TestRegistrySummary tests the debug line format and ordering
func TestRegistrySummary(t *testing.T) {
	reg := NewRegistry()
	reg.Strings.Get(KeyPhase).Store("Running")
	reg.Ints.Get(KeyTicks).Store(12)
	reg.Ints.Get(KeyDroppedFrames).Store(1)
	reg.Floats.Get(KeyRemaining).Set(4.25)
	reg.Bools.Get(KeyVisible).Store(true)

	want := "phase=Running dropped=1 ticks=12 remaining=4.2 visible=true"
	if got := reg.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	if reg.TotalCount() != 5 {
		t.Errorf("Expected 5 metrics, got %d", reg.TotalCount())
	}
}

// TestAtomicStringTruncates tests the fixed maximum length
func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected empty zero value")
	}
	s.Store("abcdefghijklmnopqrstuvwxyz")
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("Expected length %d, got %q", MaxStringLen, got)
	}
}

// TestAtomicFloat tests round trip through the bit pattern
func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	f.Set(-1.5)
	if f.Get() != -1.5 {
		t.Errorf("Expected -1.5, got %v", f.Get())
	}
}
