package gameplay

import (
	engineinput "tangrin/pkg/engine/input"
	"tangrin/pkg/engine/logger"
	"tangrin/pkg/game/state"
)

// ProcessCommand dispatches one player command and records whether it ended the turn.
func ProcessCommand(s *Session, action engineinput.Action) {
	g := s.Game

	if action.IsMove() {
		g.TurnOver = Move(s, moveDirections[action])
		return
	}

	switch action {
	case engineinput.ActionEnd:
		logger.Info("game ended by player", "turn", g.Turn)
		g.EndTriggered = true
		g.TurnOver = true
		g.Phase = state.PhaseEnded

	case engineinput.ActionPickUp:
		g.TurnOver = PickUp(s)

	case engineinput.ActionDump:
		g.TurnOver = Dump(s)

	case engineinput.ActionSwap:
		g.TurnOver = Swap(s)

	case engineinput.ActionOpen:
		g.TurnOver = Open(s)

	default:
		logMessage(s, msgInvalidInput)
	}
}
