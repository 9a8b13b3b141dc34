package random

import "testing"

func TestRand_IntnStaysInRange(t *testing.T) {
	s := New(42)
	for i := 0; i < 1000; i++ {
		if v := s.Intn(6); v < 0 || v >= 6 {
			t.Fatalf("Intn(6) = %d, want [0,6)", v)
		}
	}
}

func TestRand_IntRangeStaysInRange(t *testing.T) {
	s := New(7)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := s.IntRange(1, 30)
		if v < 1 || v >= 30 {
			t.Fatalf("IntRange(1, 30) = %d, want [1,30)", v)
		}
		seen[v] = true
	}
	if len(seen) != 29 {
		t.Errorf("IntRange(1, 30) produced %d distinct values, want 29", len(seen))
	}
}

func TestRand_DegenerateRanges(t *testing.T) {
	s := New(1)
	if v := s.Intn(0); v != 0 {
		t.Errorf("Intn(0) = %d, want 0", v)
	}
	if v := s.IntRange(5, 5); v != 5 {
		t.Errorf("IntRange(5, 5) = %d, want 5", v)
	}
}

func TestRand_SameSeedSameSequence(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 50; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d for equal seeds", i, x, y)
		}
	}
	if a.Seed() != 99 {
		t.Errorf("Seed() = %d, want 99", a.Seed())
	}
}

func TestRand_ZeroSeedIsReplaced(t *testing.T) {
	if s := New(0); s.Seed() == 0 {
		t.Error("New(0).Seed() = 0, want a time based seed")
	}
}

func TestScripted(t *testing.T) {
	s := NewScripted([]int{3, 40, 12}, []float64{0.5})

	if v := s.Intn(6); v != 3 {
		t.Errorf("Intn(6) = %d, want 3", v)
	}
	if v := s.Intn(6); v != 4 {
		t.Errorf("Intn(6) = %d, want 4 (40 mod 6)", v)
	}
	if v := s.IntRange(1, 30); v != 12 {
		t.Errorf("IntRange(1, 30) = %d, want 12", v)
	}
	if v := s.IntRange(1, 30); v != 1 {
		t.Errorf("IntRange(1, 30) on empty script = %d, want 1", v)
	}
	if v := s.Float64n(2.0); v != 1.0 {
		t.Errorf("Float64n(2.0) = %v, want 1.0", v)
	}
	if v := s.Float64(); v != 0 {
		t.Errorf("Float64() on empty script = %v, want 0", v)
	}
}
