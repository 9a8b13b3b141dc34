package gameplay

import (
	"tangrin/pkg/engine/logger"
	"tangrin/pkg/engine/world"
	"tangrin/pkg/game/state"
)

// maxTideDrop bounds the minutes the tide clock loses per turn: each turn draws from [0, maxTideDrop).
const maxTideDrop = 18

// NextTurn plays one turn: tide, stamina, description, the ghost, then
// commands until the turn is over.
func NextTurn(s *Session) {
	g := s.Game
	g.TurnOver = false
	g.Phase = state.PhasePlaying
	g.Turn++
	s.Out.Clear()

	TideCheck(s)
	g.Tide -= s.Rand.Intn(maxTideDrop)
	ShowIfTideIn(s)
	if g.Tide < state.TideResetFloor {
		g.Tide = g.TideOutDuration
	}
	CalculateStaminaLeft(s)

	describeLocation(s)
	s.Pace.Delay(1000)

	GhostEncounter(s)
	PlayerMove(s)

	if g.Phase == state.PhasePlaying {
		g.Phase = state.PhaseTurnOver
	}
}

// TideCheck reports the minutes left while the tide is out
func TideCheck(s *Session) {
	if s.Game.IsTideOut() {
		logMessage(s, msgTideCheck, s.Game.Tide)
	}
}

// ShowIfTideIn reports the tide once it is in, and carries a player waiting
// at the starting location off to a random cave.
func ShowIfTideIn(s *Session) {
	g := s.Game
	if g.IsTideOut() {
		return
	}

	logMessage(s, msgTideIn)

	if g.AtStart() {
		logMessage(s, msgCarriedAway)
		g.Location = world.Location(s.Rand.IntRange(1, world.Locations))
		logger.Info("player carried away by the tide", "to", g.Location)
	}
}

// CalculateStaminaLeft rests the player at the starting location while the
// tide is out and drains them everywhere else.
func CalculateStaminaLeft(s *Session) {
	g := s.Game
	if g.AtStart() && g.IsTideOut() {
		g.Player.RestoreFull()
		return
	}
	g.Player.Drain(g.Tide)
}

// showStaminaStatus reports how the player is holding up
func showStaminaStatus(s *Session) {
	for _, msg := range statusMessages[s.Game.Player.Status()] {
		logMessage(s, msg)
	}
}

// PlayerMove reads commands until one of them ends the turn. A player out of
// stamina ends the game instead.
func PlayerMove(s *Session) {
	g := s.Game
	for !g.TurnOver {
		showExits(s)
		logMessage(s, msgCommands)
		showStaminaStatus(s)

		if g.Player.IsDead() {
			logger.Info("player died", "turn", g.Turn, "location", g.Location)
			g.EndTriggered = true
			g.TurnOver = true
			g.Phase = state.PhaseEnded
			return
		}

		ProcessCommand(s, s.In.ReadCommand())
	}
}
