// Package gameplay runs the game: the turn loop, the ghost encounter and the
// inventory puzzle.
package gameplay

import (
	"tangrin/pkg/engine/input"
	"tangrin/pkg/engine/pacing"
	"tangrin/pkg/engine/random"
	"tangrin/pkg/game/content"
	"tangrin/pkg/game/renderer"
	"tangrin/pkg/game/state"
)

// Rules holds the odds of the ghost encounter.
type Rules struct {
	// EncounterThreshold is the draw a turn must exceed for the ghost to appear.
	EncounterThreshold float64

	// TheftChance is the chance the ghost steals something once met.
	TheftChance float64
}

// DefaultRules returns the classic odds
func DefaultRules() Rules {
	return Rules{
		EncounterThreshold: 0.9857,
		TheftChance:        0.3,
	}
}

// Session wires one game to its collaborators.
type Session struct {
	Game  *state.Game
	Rand  random.Source
	In    input.Reader
	Out   renderer.Renderer
	Pace  pacing.Pacer
	World *content.World
	Rules Rules
}

// NewSession creates a session. A nil pacer skips every pause and a nil world
// uses the built-in text.
func NewSession(g *state.Game, rng random.Source, in input.Reader, out renderer.Renderer, pace pacing.Pacer, world *content.World, rules Rules) *Session {
	if pace == nil {
		pace = pacing.None{}
	}
	if world == nil {
		world = content.Default()
	}
	return &Session{
		Game:  g,
		Rand:  rng,
		In:    in,
		Out:   out,
		Pace:  pace,
		World: world,
		Rules: rules,
	}
}
