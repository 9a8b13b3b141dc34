package gameplay

import (
	"testing"

	"tangrin/pkg/engine/random"
	"tangrin/pkg/engine/world"
	"tangrin/pkg/game/items"
)

func newEncounterSession(t *testing.T, ints []int, floats []float64, lines ...string) (*Session, *recorder) {
	t.Helper()
	s, out := newTestSession(t, random.NewScripted(ints, floats), lines...)
	s.Rules = DefaultRules()
	s.Game.Location = 9
	return s, out
}

func TestGhostEncounter_Rare(t *testing.T) {
	s, out := newEncounterSession(t, nil, []float64{0.9857})
	if GhostEncounter(s) {
		t.Error("GhostEncounter() = true at the threshold")
	}
	if len(out.messages) != 0 {
		t.Errorf("messages %q, want none", out.messages)
	}
}

func TestGhostEncounter_OnlyFrench(t *testing.T) {
	s, out := newEncounterSession(t, nil, []float64{0.99})
	s.Game.Inventory.Add(items.Treasure)

	if !GhostEncounter(s) {
		t.Fatal("GhostEncounter() = false")
	}
	if !out.saw(msgNoDictionary) {
		t.Errorf("messages %q, want %q", out.messages, msgNoDictionary)
	}
	if s.Game.Location != 9 || !s.Game.Inventory.IsHolding(items.Treasure) {
		t.Error("ghost acted without being understood")
	}
}

func TestGhostEncounter_Teleport(t *testing.T) {
	s, out := newEncounterSession(t, nil, []float64{0.99, 0.31}, "y")
	g := s.Game
	g.Inventory.Add(items.Dictionary)

	GhostEncounter(s)
	if g.Location != world.StartingLocation {
		t.Errorf("location = %d, want the start", g.Location)
	}
	if !g.Inventory.IsHolding(items.Dictionary) || out.saw(msgGhostThanks) {
		t.Error("ghost stole with a theft draw above the chance")
	}
}

func TestGhostEncounter_StealsTreasure(t *testing.T) {
	s, out := newEncounterSession(t, []int{12}, []float64{0.99, 0.3}, "non")
	g := s.Game
	g.Inventory.Add(items.Dictionary)
	g.Inventory.Add(items.Treasure)

	GhostEncounter(s)
	if g.Location != 9 {
		t.Errorf("declined offer moved the player to %d", g.Location)
	}
	if g.Inventory.IsHolding(items.Treasure) {
		t.Error("treasure still held")
	}
	if g.Items.ItemAt(12) != items.Treasure {
		t.Errorf("item at 12 = %d, want the treasure", g.Items.ItemAt(12))
	}
	if !g.Inventory.IsHolding(items.Dictionary) {
		t.Error("ghost took the dictionary as well")
	}
	if !out.saw(plain(msgGhostSteals, s.World.ItemName(items.Treasure))) {
		t.Errorf("theft message missing from %q", out.messages)
	}
}

func TestGhostEncounter_StealsHeldItem(t *testing.T) {
	s, _ := newEncounterSession(t, []int{1}, []float64{0.99, 0.1}, "n")
	g := s.Game
	g.Inventory.Set(0, items.Dictionary)
	g.Inventory.Set(2, items.Knife)

	GhostEncounter(s)
	if g.Inventory.IsHolding(items.Knife) {
		t.Error("knife still held")
	}
	if !g.Inventory.IsHolding(items.Dictionary) {
		t.Error("dictionary stolen instead of the knife")
	}
}

func TestGhostEncounter_TreasureDroppedOnEmptyLocation(t *testing.T) {
	s, _ := newEncounterSession(t, []int{1}, []float64{0.99, 0.1}, "n")
	g := s.Game
	for loc := world.Location(0); loc < world.Locations; loc++ {
		g.Items.PutItemAt(loc, items.ID(int(loc)%int(items.Nothing)))
	}
	g.Items.PutItemAt(3, items.Nothing)
	g.Items.PutItemAt(17, items.Nothing)
	g.Inventory.Add(items.Dictionary)
	g.Inventory.Add(items.Treasure)

	GhostEncounter(s)
	if g.Items.ItemAt(17) != items.Treasure {
		t.Errorf("item at 17 = %d, want the treasure", g.Items.ItemAt(17))
	}
	if g.Items.ItemAt(3) != items.Nothing {
		t.Errorf("item at 3 = %d, want nothing", g.Items.ItemAt(3))
	}
	for loc := world.Location(0); loc < world.Locations; loc++ {
		if loc == 3 || loc == 17 {
			continue
		}
		if want := items.ID(int(loc) % int(items.Nothing)); g.Items.ItemAt(loc) != want {
			t.Errorf("item at %d = %d, want %d left in place", loc, g.Items.ItemAt(loc), want)
		}
	}
}
