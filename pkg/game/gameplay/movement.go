package gameplay

import (
	"strings"

	engineinput "tangrin/pkg/engine/input"
	"tangrin/pkg/engine/logger"
	"tangrin/pkg/engine/world"
	"tangrin/pkg/game/items"
	"tangrin/pkg/game/state"
)

// moveDirections maps movement commands to exit slots
var moveDirections = map[engineinput.Action]world.Direction{
	engineinput.ActionNorth: world.North,
	engineinput.ActionEast:  world.East,
	engineinput.ActionUp:    world.Up,
	engineinput.ActionSouth: world.South,
	engineinput.ActionWest:  world.West,
	engineinput.ActionDown:  world.Down,
}

// Move follows the exit dir out of the player's location. A missing exit is
// reported and leaves the turn running; a successful move ends the turn and
// checks for victory.
func Move(s *Session, dir world.Direction) bool {
	g := s.Game
	dest, ok := g.Map.DestinationLocation(g.Location, dir)
	if !ok {
		logMessage(s, msgInvalidMove)
		return false
	}

	logger.Debug("player moved", "from", g.Location, "direction", dir.String(), "to", dest)
	g.Location = dest
	CheckWinningCondition(s)
	return true
}

// CheckWinningCondition ends the game in victory when the player is back at the
// starting location with the treasure while the tide is out.
func CheckWinningCondition(s *Session) bool {
	g := s.Game
	if g.Won || !g.IsTideOut() || !g.AtStart() || !g.Inventory.IsHolding(items.Treasure) {
		return false
	}

	logMessage(s, msgGotOut)
	logMessage(s, msgNextGame)
	s.In.WaitForKey()
	g.Won = true
	g.Phase = state.PhaseWon
	logger.Info("game won", "turn", g.Turn, "tide", g.Tide, "stamina", g.Player.Stamina)
	return true
}

// showExits lists the directions leading out of the player's location
func showExits(s *Session) {
	var names []string
	for _, d := range s.Game.Map.Exits(s.Game.Location) {
		names = append(names, "ACTION{"+strings.ToLower(d.String())+"}")
	}
	logMessage(s, msgExits, strings.Join(names, " "))
}

// describeLocation shows the room and whatever lies in it
func describeLocation(s *Session) {
	g := s.Game
	logMessage(s, msgRoom, s.World.RoomDescription(g.Location))

	here := g.ItemHere()
	if here == items.Nothing {
		return
	}
	logMessage(s, msgVisibleItem, dynamicGet(visibleItemPlace(s)), s.World.ItemName(here))
}

// visibleItemPlace picks where the item in view is lying
func visibleItemPlace(s *Session) string {
	switch {
	case s.Rand.Float64n(1.0) < .3:
		return msgNextToRock
	case s.Rand.Float64n(2.0) < .3:
		return msgAgainstWall
	case s.Rand.Float64n(2.0) < .3:
		return msgOnGround
	default:
		return msgInTorchlight
	}
}
