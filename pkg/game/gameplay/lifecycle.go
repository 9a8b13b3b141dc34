package gameplay

import (
	"tangrin/pkg/engine/logger"
	"tangrin/pkg/game/setup"
	"tangrin/pkg/game/state"
)

// Run plays games until the player ends the session. A win goes straight on to
// a new game; a player who dies is asked whether to play again.
func Run(s *Session) error {
	g := s.Game
	games := 0

	for !g.EndTriggered {
		g.Won = false
		s.Out.Clear()
		s.Out.ShowTitle(s.World.Title)
		OfferInstructions(s)

		if err := StartGame(s); err != nil {
			return err
		}
		games++
		logger.Info("game started", "game", games)

		for !g.EndTriggered && !g.Won {
			NextTurn(s)
		}

		if g.Player.IsDead() && !askPlayAgain(s) {
			break
		}
	}

	g.Phase = state.PhaseEnded
	logMessage(s, msgGoodbye)
	logger.Info("session over", "games", games)
	return nil
}

// StartGame builds a fresh world and puts the player at the entrance
func StartGame(s *Session) error {
	g := s.Game
	if err := setup.Initialise(g, s.Rand); err != nil {
		logger.Error("failed to initialise world", "error", err)
		return err
	}
	g.Phase = state.PhasePlaying
	s.Out.Clear()
	return nil
}

// OfferInstructions asks whether the player wants the instructions and pages
// through them if so.
func OfferInstructions(s *Session) {
	s.Game.Phase = state.PhaseInstructionsOffered
	logMessage(s, msgOfferInstructions)
	if !s.In.YesNo() {
		logMessage(s, msgInstructionsSkipped)
		return
	}

	for _, page := range s.World.Instructions {
		s.Out.Clear()
		logMessage(s, page)
		logMessage(s, msgContinue)
		s.In.WaitForEnter()
	}
}

func askPlayAgain(s *Session) bool {
	logMessage(s, msgPlayAgain)
	if !s.In.YesNo() {
		return false
	}
	s.Game.EndTriggered = false
	return true
}
