package input

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{"open", ActionOpen},
		{"OPEN", ActionOpen},
		{"op", ActionOpen},
		{"pickup", ActionPickUp},
		{"Pick it up", ActionPickUp},
		{"dump", ActionDump},
		{"swap", ActionSwap},
		{"end", ActionEnd},
		{"north", ActionNorth},
		{"  south  ", ActionSouth},
		{"east", ActionEast},
		{"west", ActionWest},
		{"up", ActionUp},
		{"down", ActionDown},
		{"do", ActionDown},
		{"du", ActionDump},
		{"n", ActionInvalid},
		{"", ActionInvalid},
		{"xyzzy", ActionInvalid},
		{"leave", ActionInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseAction(tt.input); got != tt.want {
				t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAction_IsMove(t *testing.T) {
	moves := map[Action]bool{
		ActionNorth: true, ActionSouth: true, ActionEast: true,
		ActionWest: true, ActionUp: true, ActionDown: true,
	}
	for a := ActionInvalid; a <= ActionDown; a++ {
		if got := a.IsMove(); got != moves[a] {
			t.Errorf("%v.IsMove() = %v, want %v", a, got, moves[a])
		}
	}
}

func TestAction_StringRoundTrip(t *testing.T) {
	for a := ActionOpen; a <= ActionDown; a++ {
		if got := ParseAction(a.String()); got != a {
			t.Errorf("ParseAction(%q) = %v, want %v", a.String(), got, a)
		}
	}
}
