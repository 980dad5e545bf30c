package triangle

// WindowHints are the creation hints applied before the window is created.
// ForwardCompatible removes deprecated functionality; macOS only creates
// core contexts with it set.
type WindowHints struct {
	ContextVersionMajor int  `yaml:"context_major" toml:"context_major"`
	ContextVersionMinor int  `yaml:"context_minor" toml:"context_minor"`
	CoreProfile         bool `yaml:"core_profile" toml:"core_profile"`
	ForwardCompatible   bool `yaml:"forward_compatible" toml:"forward_compatible"`
	Visible             bool `yaml:"visible" toml:"visible"`
	Resizable           bool `yaml:"resizable" toml:"resizable"`
	Samples             int  `yaml:"samples" toml:"samples"`
}

// DefaultWindowHints requests a forward-compatible OpenGL 3.3 core context
// in a hidden, resizable window with 4x multisampling.
func DefaultWindowHints() WindowHints {
	return WindowHints{
		ContextVersionMajor: 3,
		ContextVersionMinor: 3,
		CoreProfile:         true,
		ForwardCompatible:   true,
		Visible:             false,
		Resizable:           true,
		Samples:             4,
	}
}

// Platform is the windowing library: library lifetime, window creation,
// display queries and event dispatch.
type Platform interface {
	Init() error
	Terminate()
	// Version returns the library's version string.
	Version() string

	// ApplyHints resets the hints to their defaults and then sets h.
	ApplyHints(h WindowHints)
	CreateWindow(width, height int, title string) (Window, error)
	// PrimaryVideoMode returns the current mode of the primary display.
	PrimaryVideoMode() (VideoMode, error)

	SwapInterval(interval int)
	// PollEvents processes pending events. Key callbacks fire only from here.
	PollEvents()
}

// Window is a window with an OpenGL context.
type Window interface {
	Size() (width, height int)
	SetPos(x, y int)
	SetKeyCallback(cb KeyCallback)
	MakeContextCurrent()
	Show()

	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()

	// ReleaseCallbacks unregisters every callback set on the window.
	ReleaseCallbacks()
	Destroy()
}

// CenterPosition returns the position that centers a width x height window
// on a display with the given mode.
func CenterPosition(mode VideoMode, width, height int) (x, y int) {
	return (mode.Width - width) / 2, (mode.Height - height) / 2
}

// HandleKey is the demo's key callback. Releasing Escape requests the
// window to close; every other event is ignored.
func HandleKey(w Window, key Key, scancode int, action Action, mods ModifierKey) {
	if key == KeyEscape && action == ActionRelease {
		// Picked up by the render loop's ShouldClose check.
		w.SetShouldClose(true)
	}
}
