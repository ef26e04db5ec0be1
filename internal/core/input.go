package core

// Action represents a semantic host action, abstracted from physical key
// presses and mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter, Space, click on the start button
	ActionLeft           // Left arrow, A - nudge the virtual pointer left
	ActionRight          // Right arrow, D - nudge the virtual pointer right
	ActionDismiss        // any key or click while a notification is shown
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDismiss:
		return "Dismiss"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
