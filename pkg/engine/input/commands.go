package input

import "strings"

// Action is one entry of the closed command vocabulary.
type Action int

const (
	// ActionInvalid is any input outside the vocabulary.
	ActionInvalid Action = iota

	ActionOpen
	ActionPickUp
	ActionDump
	ActionSwap
	ActionEnd

	// Movement
	ActionNorth
	ActionSouth
	ActionEast
	ActionWest
	ActionUp
	ActionDown
)

// prefixLength is the number of leading characters that select a command.
const prefixLength = 2

// bindings maps upper-cased command prefixes to actions.
var bindings = map[string]Action{
	"OP": ActionOpen,
	"PI": ActionPickUp,
	"DU": ActionDump,
	"SW": ActionSwap,
	"EN": ActionEnd,
	"NO": ActionNorth,
	"SO": ActionSouth,
	"EA": ActionEast,
	"WE": ActionWest,
	"UP": ActionUp,
	"DO": ActionDown,
}

// arrowCommands maps arrow key codes to the command words they stand for.
var arrowCommands = map[string]string{
	"arrow_up":    "north",
	"arrow_down":  "south",
	"arrow_left":  "west",
	"arrow_right": "east",
}

// ParseAction maps free text to an Action using its first two characters,
// ignoring case and surrounding whitespace.
func ParseAction(text string) Action {
	text = strings.TrimSpace(text)
	if len(text) < prefixLength {
		return ActionInvalid
	}
	if act, ok := bindings[strings.ToUpper(text[:prefixLength])]; ok {
		return act
	}
	return ActionInvalid
}

// IsMove returns true for the six movement actions
func (a Action) IsMove() bool {
	return a >= ActionNorth && a <= ActionDown
}

// String returns the command word for an action
func (a Action) String() string {
	switch a {
	case ActionOpen:
		return "open"
	case ActionPickUp:
		return "pickup"
	case ActionDump:
		return "dump"
	case ActionSwap:
		return "swap"
	case ActionEnd:
		return "end"
	case ActionNorth:
		return "north"
	case ActionSouth:
		return "south"
	case ActionEast:
		return "east"
	case ActionWest:
		return "west"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	default:
		return "invalid"
	}
}
