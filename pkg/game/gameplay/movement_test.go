package gameplay

import (
	"testing"

	engineinput "tangrin/pkg/engine/input"
	"tangrin/pkg/engine/random"
	"tangrin/pkg/engine/world"
	"tangrin/pkg/game/items"
	"tangrin/pkg/game/state"
)

func TestMove(t *testing.T) {
	s, out := newTestSession(t, nil)
	g := s.Game
	connect(t, s, 0, world.North, 5)

	if Move(s, world.East) {
		t.Error("Move(East) with no exit = true")
	}
	if !out.saw(plain(msgInvalidMove)) {
		t.Errorf("messages %q, want %q", out.messages, plain(msgInvalidMove))
	}
	if g.Location != 0 {
		t.Errorf("location = %d after a refused move", g.Location)
	}

	if !Move(s, world.North) {
		t.Fatal("Move(North) = false")
	}
	if g.Location != 5 {
		t.Errorf("location = %d, want 5", g.Location)
	}
	if !Move(s, world.South) || g.Location != 0 {
		t.Errorf("return trip ended at %d, want 0", g.Location)
	}
}

func TestCheckWinningCondition(t *testing.T) {
	s, out := newTestSession(t, nil, "")
	g := s.Game
	connect(t, s, 5, world.South, 0)
	g.Location = 5
	g.Tide = 100
	g.Inventory.Add(items.Treasure)

	if !Move(s, world.South) {
		t.Fatal("Move(South) = false")
	}
	if !g.Won || g.Phase != state.PhaseWon {
		t.Errorf("Won = %v, Phase = %v, want a won game", g.Won, g.Phase)
	}
	if CheckWinningCondition(s) {
		t.Error("victory announced twice")
	}
	if n := out.count(msgGotOut); n != 1 {
		t.Errorf("victory message shown %d times, want 1", n)
	}
}

func TestCheckWinningCondition_NotYet(t *testing.T) {
	tests := []struct {
		name     string
		location world.Location
		tide     int
		held     items.ID
	}{
		{"tide in", 0, 0, items.Treasure},
		{"away from the start", 3, 150, items.Treasure},
		{"no treasure", 0, 150, items.Gun},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t, nil)
			g := s.Game
			g.Location = tt.location
			g.Tide = tt.tide
			g.Inventory.Add(tt.held)

			if CheckWinningCondition(s) || g.Won {
				t.Error("CheckWinningCondition() = true")
			}
		})
	}
}

func TestProcessCommand(t *testing.T) {
	s, out := newTestSession(t, nil)
	g := s.Game
	connect(t, s, 0, world.Down, 12)

	ProcessCommand(s, engineinput.ActionInvalid)
	if g.TurnOver || !out.saw(msgInvalidInput) {
		t.Errorf("invalid command: TurnOver = %v, messages %q", g.TurnOver, out.messages)
	}

	ProcessCommand(s, engineinput.ActionDown)
	if !g.TurnOver || g.Location != 12 {
		t.Errorf("move down: TurnOver = %v, location %d", g.TurnOver, g.Location)
	}

	g.TurnOver = false
	ProcessCommand(s, engineinput.ActionPickUp)
	if g.TurnOver {
		t.Error("pickup ended the turn")
	}

	ProcessCommand(s, engineinput.ActionEnd)
	if !g.EndTriggered || !g.TurnOver || g.Phase != state.PhaseEnded {
		t.Errorf("end: EndTriggered = %v, TurnOver = %v, Phase = %v", g.EndTriggered, g.TurnOver, g.Phase)
	}
}

func TestVisibleItemPlace(t *testing.T) {
	tests := []struct {
		floats []float64
		want   string
	}{
		{[]float64{0.1}, msgNextToRock},
		{[]float64{0.5, 0.1}, msgAgainstWall},
		{[]float64{0.5, 0.5, 0.1}, msgOnGround},
		{[]float64{0.5, 0.5, 0.5}, msgInTorchlight},
	}
	for _, tt := range tests {
		s, _ := newTestSession(t, random.NewScripted(nil, tt.floats))
		if got := visibleItemPlace(s); got != tt.want {
			t.Errorf("visibleItemPlace(%v) = %q, want %q", tt.floats, got, tt.want)
		}
	}
}

func TestDescribeLocation(t *testing.T) {
	s, out := newTestSession(t, random.NewScripted(nil, []float64{0.2}))
	g := s.Game
	g.Location = 7
	g.Items.PutItemAt(7, items.Helmet)

	describeLocation(s)
	if !out.saw(s.World.RoomDescription(7)) {
		t.Errorf("room description missing from %q", out.messages)
	}
	if !out.saw(plain(msgVisibleItem, msgNextToRock, s.World.ItemName(items.Helmet))) {
		t.Errorf("item line missing from %q", out.messages)
	}
}
