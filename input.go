package triangle

// Key represents a keyboard key.
// Backends map every key the demo does not react to onto KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// Action is the state transition reported with a key event.
type Action int

const (
	ActionRelease Action = iota
	ActionPress
	ActionRepeat
)

func (a Action) String() string {
	switch a {
	case ActionRelease:
		return "release"
	case ActionPress:
		return "press"
	case ActionRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// ModifierKey is a bitmask of modifier keys held during a key event.
type ModifierKey int

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// KeyCallback receives key events from a Window.
// It is only invoked from inside Platform.PollEvents.
type KeyCallback func(w Window, key Key, scancode int, action Action, mods ModifierKey)
