// Package state holds the state of one game session.
package state

import (
	"tangrin/pkg/engine/world"
	"tangrin/pkg/game/entities"
	"tangrin/pkg/game/items"
)

const (
	// TideOutDuration is the tide clock at the start of a game and after every reset.
	TideOutDuration = 200

	// TideResetFloor is the tide value below which the clock starts again.
	TideResetFloor = -100

	maxMessages = 5
)

// Phase is the stage a session is in.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInstructionsOffered
	PhasePlaying
	PhaseTurnOver
	PhaseWon
	PhaseEnded
)

// String returns the name of a phase
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseInstructionsOffered:
		return "InstructionsOffered"
	case PhasePlaying:
		return "Playing"
	case PhaseTurnOver:
		return "TurnOver"
	case PhaseWon:
		return "Won"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Game represents the state of one game of Tangrin
type Game struct {
	Map       *world.CaveMap
	Items     *items.Field
	Player    *entities.Player
	Inventory *entities.Inventory

	Location world.Location

	// Tide counts down the minutes until the tide returns; the tide is out while it is positive.
	Tide            int
	TideOutDuration int

	Phase        Phase
	Turn         int
	TurnOver     bool
	EndTriggered bool
	Won          bool

	Messages []string
}

// NewGame creates a game with an empty map. Non-positive settings use the defaults.
func NewGame(tideOutDuration, fullStamina int) *Game {
	if tideOutDuration <= 0 {
		tideOutDuration = TideOutDuration
	}
	return &Game{
		Map:             world.NewCaveMap(),
		Items:           items.NewField(),
		Player:          entities.NewPlayer(fullStamina),
		Inventory:       entities.NewInventory(),
		Location:        world.StartingLocation,
		Tide:            tideOutDuration,
		TideOutDuration: tideOutDuration,
		Phase:           PhaseNotStarted,
		Messages:        make([]string, 0),
	}
}

// Reset prepares the session for a new game: full tide, full stamina, empty
// hands and the player back at the starting location. The map and items are
// rebuilt separately.
func (g *Game) Reset() {
	g.Location = world.StartingLocation
	g.Tide = g.TideOutDuration
	g.Player.RestoreFull()
	g.Inventory.Clear()
	g.Turn = 0
	g.TurnOver = false
	g.Won = false
	g.ClearMessages()
}

// IsTideOut returns true while the tide clock is positive
func (g *Game) IsTideOut() bool {
	return g.Tide > 0
}

// AtStart returns true when the player stands at the starting location
func (g *Game) AtStart() bool {
	return g.Location == world.StartingLocation
}

// ItemHere returns the item lying at the player's location
func (g *Game) ItemHere() items.ID {
	return g.Items.ItemAt(g.Location)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
