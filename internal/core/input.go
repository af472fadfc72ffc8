package core

import "maps"

// Action is a player intent. Key bindings live in the front ends.
// Back leaves a paused or finished run; Pause toggles.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the set of actions held during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set adds a to the frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a is in the frame. A zero frame has nothing.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear empties the frame, keeping its map.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns a frame that does not share f's map.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	maps.Copy(clone.Actions, f.Actions)
	return clone
}
