package world

import "strings"

// Direction identifies one of the six exit slots of a location.
type Direction int

// Direction constants, in exit slot order. Opposite slots are three apart.
const (
	North Direction = iota
	East
	Up
	South
	West
	Down
)

// Exits is the number of exit slots per location.
const Exits = 6

// AllDirections returns all valid directions in exit slot order
func AllDirections() []Direction {
	return []Direction{North, East, Up, South, West, Down}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case Up:
		return "Up"
	case South:
		return "South"
	case West:
		return "West"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction names an exit slot
func (d Direction) IsValid() bool {
	return d >= North && d <= Down
}

// Opposite returns the slot an edge arrives on at its destination.
// North/South, East/West and Up/Down pair up.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	if d < South {
		return d + 3
	}
	return d - 3
}

// ParseDirection maps a direction name to a Direction, ignoring case.
func ParseDirection(name string) (Direction, bool) {
	for _, d := range AllDirections() {
		if strings.EqualFold(name, d.String()) {
			return d, true
		}
	}
	return -1, false
}
