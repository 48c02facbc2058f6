package input

import "slices"

// Action represents a high-level intent in the game
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Toggles
	ActionToggleEnemyPath
	ActionToggleSight

	// Meta
	ActionWait
	ActionScreenshot
	ActionQuit
)

// bindings maps key codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,

	"k": ActionToggleEnemyPath,
	"v": ActionToggleSight,

	".": ActionWait,
	"p": ActionScreenshot,

	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapCode returns the action bound to a key code
func MapCode(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// Symbol returns the session symbol an action feeds in, or 0 when the
// action is handled by the caller.
func (a Action) Symbol() rune {
	switch a {
	case ActionMoveNorth:
		return 'w'
	case ActionMoveSouth:
		return 's'
	case ActionMoveWest:
		return 'a'
	case ActionMoveEast:
		return 'd'
	case ActionToggleEnemyPath:
		return 'k'
	case ActionToggleSight:
		return 'v'
	default:
		return 0
	}
}

// String returns a human-friendly name for an action
func (a Action) String() string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionToggleEnemyPath:
		return "Toggle Enemy Path"
	case ActionToggleSight:
		return "Toggle Line of Sight"
	case ActionWait:
		return "Wait"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// CodesFor returns the sorted key codes bound to an action
func CodesFor(a Action) []string {
	var codes []string
	for code, act := range bindings {
		if act == a {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	return codes
}
