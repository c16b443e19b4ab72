// Package game implements the word puzzle's state machine: the menu, a
// level in play, and the level-complete screen, plus the frame driver that
// feeds it time and taps.
package game

// State represents the current game state.
type State int

const (
	// StateMenu shows the title and menu buttons.
	StateMenu State = iota
	// StatePlaying is a level in progress with the countdown running.
	StatePlaying
	// StateComplete shows the level summary over the finished board.
	StateComplete
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}
