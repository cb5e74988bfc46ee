package core

import (
	"math"
	"strings"
)

// Action represents a semantic game action, abstracted from physical key
// presses, swipes or HTTP calls.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Arrow up, W, K
	ActionDown           // Arrow down, S, J
	ActionLeft           // Arrow left, A, H
	ActionRight          // Arrow right, D, L
	ActionStart          // Enter - start from the menu or after game over
	ActionPause          // Space, P - toggle pause
	ActionRestart        // R - restart a running game
	ActionDifficulty     // Tab - cycle difficulty presets in the menu
	ActionHelp           // ? - toggle the key help
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionDifficulty:
		return "Difficulty"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the heading carried by a movement action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return DirNone, false
}

// DefaultSwipeThreshold is the minimum travel, in pixels, of a swipe.
const DefaultSwipeThreshold = 50.0

// ParseDirection maps a key symbol or label to a direction. It accepts the
// browser key names ("ArrowUp") and plain labels ("up", "Left"). Unknown
// symbols report false and must be ignored by the caller.
func ParseDirection(symbol string) (Direction, bool) {
	switch symbol {
	case "ArrowUp":
		return DirUp, true
	case "ArrowDown":
		return DirDown, true
	case "ArrowLeft":
		return DirLeft, true
	case "ArrowRight":
		return DirRight, true
	}

	switch strings.ToLower(strings.TrimSpace(symbol)) {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return DirNone, false
}

// ClassifySwipe turns a touch displacement into a direction. The dominant
// axis wins and ties go to the vertical axis. Swipes whose dominant travel is
// shorter than minDistance are taps and report false.
func ClassifySwipe(dx, dy, minDistance float64) (Direction, bool) {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax < minDistance && ay < minDistance {
		return DirNone, false
	}

	if ax > ay {
		if dx > 0 {
			return DirRight, true
		}
		return DirLeft, true
	}
	if dy > 0 {
		return DirDown, true
	}
	return DirUp, true
}
