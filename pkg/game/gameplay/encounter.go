package gameplay

import (
	"tangrin/pkg/engine/logger"
	"tangrin/pkg/engine/world"
	"tangrin/pkg/game/items"
)

// GhostEncounter gives the ghost of Tangrin a rare chance to appear. With the
// dictionary the player understands his offer of a ride back to the starting
// location, but he may also steal something, the treasure first.
func GhostEncounter(s *Session) bool {
	if s.Rand.Float64() <= s.Rules.EncounterThreshold {
		return false
	}

	g := s.Game
	logger.Info("ghost encounter", "turn", g.Turn, "location", g.Location)
	logMessage(s, msgMeetGhost)
	s.Pace.Delay(4000)
	s.Out.Clear()

	if !g.Inventory.IsHolding(items.Dictionary) {
		logMessage(s, msgNoDictionary)
		return true
	}

	logMessage(s, msgHasDictionary)
	logMessage(s, msgTeleportOffer)
	if s.In.YesNo() {
		g.Location = world.StartingLocation
		logger.Info("ghost returned player to the start")
	}

	if s.Rand.Float64() <= s.Rules.TheftChance {
		ghostSteals(s)
	}
	return true
}

// ghostSteals takes the treasure when it is held, dropping it at an empty
// location in the caves, or else any one thing the player holds.
func ghostSteals(s *Session) {
	g := s.Game

	slot, holdingTreasure := g.Inventory.Index(items.Treasure)
	if holdingTreasure {
		g.Items.PutItemAt(treasureDropLocation(s), items.Treasure)
	} else {
		held := g.Inventory.Held()
		if len(held) == 0 {
			return
		}
		slot = held[s.Rand.Intn(len(held))]
	}

	stolen := g.Inventory.Item(slot)
	logMessage(s, msgGhostSteals, s.World.ItemName(stolen))
	g.Inventory.Remove(slot)
	logger.Info("ghost stole item", "item", int(stolen), "slot", slot)
	s.Pace.Delay(1000)
	logMessage(s, msgGhostThanks)
}

// treasureDropLocation draws a location with nothing lying there. When every
// location holds something any location may be drawn.
func treasureDropLocation(s *Session) world.Location {
	var empty []world.Location
	for loc := world.Location(0); loc < world.Locations; loc++ {
		if s.Game.Items.ItemAt(loc) == items.Nothing {
			empty = append(empty, loc)
		}
	}
	if len(empty) == 0 {
		return world.Location(s.Rand.Intn(world.Locations))
	}
	return empty[s.Rand.Intn(len(empty))]
}
