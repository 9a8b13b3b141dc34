package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"tangrin/pkg/engine/random"
)

// Location is the id of one cave in the map.
type Location int

const (
	// Locations is the number of caves in a map.
	Locations = 30

	// StartingLocation is the cave under the cliff where every game begins.
	StartingLocation Location = 0

	// NoLocation marks an empty exit slot.
	NoLocation Location = -1

	// InitialConnections is the number of random two way connections placed before repair.
	InitialConnections = 33

	// MaxPlacementAttempts bounds the candidates tried for a single connection.
	MaxPlacementAttempts = 10000
)

var (
	// ErrConnectionOutOfMap is returned when a connection is requested outside the map.
	ErrConnectionOutOfMap = errors.New("connection cannot be placed out of the map")

	// ErrPlacementExhausted is returned when no free connection was found within MaxPlacementAttempts.
	ErrPlacementExhausted = errors.New("no free connection found")
)

// IsValid returns true if the location lies inside the map
func (l Location) IsValid() bool {
	return l >= 0 && l < Locations
}

// CaveMap is the exit table of the cave network: each location has six exit
// slots holding a destination or NoLocation. Every edge is stored in both
// directions and no slot points back at its own location.
type CaveMap struct {
	exits [Locations][Exits]Location
}

// NewCaveMap creates a map with no connections
func NewCaveMap() *CaveMap {
	m := &CaveMap{}
	m.Reset()
	return m
}

// Reset removes every connection
func (m *CaveMap) Reset() {
	for x := range m.exits {
		for y := range m.exits[x] {
			m.exits[x][y] = NoLocation
		}
	}
}

// canConnect reports whether from and to can be joined through dir without
// overwriting an existing edge.
func (m *CaveMap) canConnect(from Location, dir Direction, to Location) bool {
	return from != to &&
		m.exits[from][dir] == NoLocation &&
		m.exits[to][dir.Opposite()] == NoLocation
}

// PlaceTwoWayConnection joins from and to through dir and its opposite slot.
// When the requested slots are taken, or from equals to, a new candidate is
// drawn from rng: the origin is kept when fixedOrigin is set, the slot and the
// destination (never the starting location) are always redrawn.
func (m *CaveMap) PlaceTwoWayConnection(rng random.Source, from Location, dir Direction, to Location, fixedOrigin bool) error {
	if !from.IsValid() || !to.IsValid() || !dir.IsValid() {
		return fmt.Errorf("%w: location %d, exit %d, destination %d", ErrConnectionOutOfMap, from, dir, to)
	}

	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		if m.canConnect(from, dir, to) {
			m.exits[from][dir] = to
			m.exits[to][dir.Opposite()] = from
			return nil
		}

		if !fixedOrigin {
			from = Location(rng.Intn(Locations))
		}
		dir = Direction(rng.Intn(Exits))
		to = Location(rng.IntRange(1, Locations))
	}

	return fmt.Errorf("%w: from location %d after %d attempts", ErrPlacementExhausted, from, MaxPlacementAttempts)
}

// Generate clears the map, places InitialConnections random connections and
// then gives every location left without exits a connection of its own.
func (m *CaveMap) Generate(rng random.Source) error {
	m.Reset()

	for i := 0; i < InitialConnections; i++ {
		from := Location(rng.Intn(Locations))
		dir := Direction(rng.Intn(Exits))
		to := Location(rng.IntRange(1, Locations))
		if err := m.PlaceTwoWayConnection(rng, from, dir, to, false); err != nil {
			return fmt.Errorf("placing connection %d: %w", i, err)
		}
	}

	for _, loc := range m.IsolatedLocations() {
		// An earlier repair may already have reached this location.
		if len(m.Exits(loc)) > 0 {
			continue
		}
		dir := Direction(rng.Intn(Exits))
		to := Location(rng.IntRange(1, Locations))
		if err := m.PlaceTwoWayConnection(rng, loc, dir, to, true); err != nil {
			return fmt.Errorf("repairing location %d: %w", loc, err)
		}
	}

	return nil
}

// DestinationLocation returns where the exit slot dir of from leads
func (m *CaveMap) DestinationLocation(from Location, dir Direction) (Location, bool) {
	if !from.IsValid() || !dir.IsValid() {
		return NoLocation, false
	}
	to := m.exits[from][dir]
	return to, to != NoLocation
}

// Exits returns the directions leading out of from, in exit slot order
func (m *CaveMap) Exits(from Location) []Direction {
	if !from.IsValid() {
		return nil
	}
	var dirs []Direction
	for _, d := range AllDirections() {
		if m.exits[from][d] != NoLocation {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// IsolatedLocations returns every location without a single exit
func (m *CaveMap) IsolatedLocations() []Location {
	var isolated []Location
	for x := Location(0); x < Locations; x++ {
		if len(m.Exits(x)) == 0 {
			isolated = append(isolated, x)
		}
	}
	return isolated
}

// ConnectionCount returns the number of two way connections in the map
func (m *CaveMap) ConnectionCount() int {
	slots := 0
	for x := range m.exits {
		for y := range m.exits[x] {
			if m.exits[x][y] != NoLocation {
				slots++
			}
		}
	}
	return slots / 2
}

// ReachableFrom finds all locations reachable from start by following exits
func (m *CaveMap) ReachableFrom(start Location) mapset.Set[Location] {
	reachable := mapset.New[Location]()
	if !start.IsValid() {
		return reachable
	}
	queue := []Location{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, d := range m.Exits(current) {
			next := m.exits[current][d]
			if !reachable.Has(next) {
				queue = append(queue, next)
			}
		}
	}

	return reachable
}
