package world

import "testing"

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for _, d := range AllDirections() {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", d, got, d)
		}
		if d.Opposite() == d {
			t.Errorf("%v.Opposite() = %v, want a different slot", d, d)
		}
	}
}

func TestDirection_OppositePairs(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{North, South},
		{East, West},
		{Up, Down},
		{South, North},
		{West, East},
		{Down, Up},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Opposite(); got != tt.want {
				t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestDirection_PairsPartitionSlots(t *testing.T) {
	seen := make(map[Direction]int)
	for _, d := range []Direction{North, East, Up} {
		seen[d]++
		seen[d.Opposite()]++
	}
	if len(seen) != Exits {
		t.Fatalf("pairs cover %d slots, want %d", len(seen), Exits)
	}
	for d, n := range seen {
		if n != 1 {
			t.Errorf("slot %v covered %d times, want 1", d, n)
		}
	}
}

func TestDirection_IsValid(t *testing.T) {
	if Direction(-1).IsValid() || Direction(Exits).IsValid() {
		t.Error("IsValid() = true for out of range direction")
	}
	if Direction(7).Opposite() != Direction(7) {
		t.Error("Opposite() of an invalid direction should be unchanged")
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("up"); !ok || d != Up {
		t.Errorf("ParseDirection(\"up\") = %v, %v, want Up, true", d, ok)
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("ParseDirection(\"sideways\") ok = true, want false")
	}
}
