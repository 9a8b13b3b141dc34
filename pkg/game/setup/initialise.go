// Package setup builds the cave map and scatters the items for a new game.
package setup

import (
	"fmt"

	"tangrin/pkg/engine/logger"
	"tangrin/pkg/engine/random"
	"tangrin/pkg/engine/world"
	"tangrin/pkg/game/items"
	"tangrin/pkg/game/state"
)

// Initialise generates a fresh map, scatters the items and resets the session.
// Any error is a fatal initialisation error.
func Initialise(g *state.Game, rng random.Source) error {
	if err := g.Map.Generate(rng); err != nil {
		return fmt.Errorf("generating map: %w", err)
	}
	if err := g.Items.Scatter(rng); err != nil {
		return err
	}
	g.Reset()

	s := Survey(g)
	logger.Info("world initialised",
		"connections", g.Map.ConnectionCount(),
		"reachable", s.Reachable,
		"treasure_container_at", s.TreasureContainerAt,
		"treasure_reachable", s.TreasureReachable,
	)
	return nil
}

// Summary describes how a generated world hangs together.
type Summary struct {
	// Reachable is the number of locations reachable from the start, the start included.
	Reachable int

	// TreasureContainerAt is where the container holding the treasure lies, or world.NoLocation.
	TreasureContainerAt world.Location

	// TreasureReachable is true when that container can be reached from the start.
	TreasureReachable bool
}

// Survey inspects the current map and items
func Survey(g *state.Game) Summary {
	reachable := g.Map.ReachableFrom(world.StartingLocation)
	s := Summary{
		Reachable:           reachable.Size(),
		TreasureContainerAt: world.NoLocation,
	}

	container, ok := g.Items.Contents.IndexOf(items.Treasure)
	if !ok {
		return s
	}
	if loc, found := g.Items.World.IndexOf(items.ID(container)); found {
		s.TreasureContainerAt = world.Location(loc)
		s.TreasureReachable = reachable.Has(s.TreasureContainerAt)
	}
	return s
}
