package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	triangle "github.com/go-theft-auto/hellotriangle"
)

// GLFWPlatform implements triangle.Platform with GLFW.
// GLFW must be used from the main thread; lock it in main's init.
type GLFWPlatform struct{}

var _ triangle.Platform = (*GLFWPlatform)(nil)

// NewGLFWPlatform returns the GLFW platform.
func NewGLFWPlatform() *GLFWPlatform {
	return &GLFWPlatform{}
}

func (p *GLFWPlatform) Init() error {
	return glfw.Init()
}

func (p *GLFWPlatform) Terminate() {
	glfw.Terminate()
}

func (p *GLFWPlatform) Version() string {
	return glfw.GetVersionString()
}

// ApplyHints resets GLFW's window hints and applies h.
func (p *GLFWPlatform) ApplyHints(h triangle.WindowHints) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, h.ContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, h.ContextVersionMinor)
	if h.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(h.ForwardCompatible))
	glfw.WindowHint(glfw.Visible, glfwBool(h.Visible))
	glfw.WindowHint(glfw.Resizable, glfwBool(h.Resizable))
	glfw.WindowHint(glfw.Samples, h.Samples)
}

func (p *GLFWPlatform) CreateWindow(width, height int, title string) (triangle.Window, error) {
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &GLFWWindow{window: window}, nil
}

// PrimaryVideoMode returns the current resolution of the primary monitor.
func (p *GLFWPlatform) PrimaryVideoMode() (triangle.VideoMode, error) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return triangle.VideoMode{}, triangle.ErrNoVideoMode
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return triangle.VideoMode{}, triangle.ErrNoVideoMode
	}
	return triangle.VideoMode{Width: mode.Width, Height: mode.Height}, nil
}

func (p *GLFWPlatform) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (p *GLFWPlatform) PollEvents() {
	glfw.PollEvents()
}

// GLFWWindow adapts *glfw.Window to triangle.Window.
type GLFWWindow struct {
	window *glfw.Window
}

var _ triangle.Window = (*GLFWWindow)(nil)

func (w *GLFWWindow) Size() (int, int) {
	return w.window.GetSize()
}

func (w *GLFWWindow) SetPos(x, y int) {
	w.window.SetPos(x, y)
}

// SetKeyCallback translates GLFW key events and forwards them to cb.
func (w *GLFWWindow) SetKeyCallback(cb triangle.KeyCallback) {
	if cb == nil {
		w.window.SetKeyCallback(nil)
		return
	}
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		cb(w, glfwKeyToKey(key), scancode, glfwActionToAction(action), glfwModsToMods(mods))
	})
}

func (w *GLFWWindow) MakeContextCurrent() {
	w.window.MakeContextCurrent()
}

func (w *GLFWWindow) Show() {
	w.window.Show()
}

func (w *GLFWWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *GLFWWindow) SetShouldClose(value bool) {
	w.window.SetShouldClose(value)
}

func (w *GLFWWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

// ReleaseCallbacks unregisters the callbacks this adapter installs.
func (w *GLFWWindow) ReleaseCallbacks() {
	w.window.SetKeyCallback(nil)
}

func (w *GLFWWindow) Destroy() {
	w.window.Destroy()
}

// glfwKeyToKey maps GLFW keys to triangle keys.
func glfwKeyToKey(key glfw.Key) triangle.Key {
	switch key {
	case glfw.KeyEscape:
		return triangle.KeyEscape
	default:
		return triangle.KeyNone
	}
}

// glfwActionToAction maps GLFW key actions to triangle actions.
func glfwActionToAction(action glfw.Action) triangle.Action {
	switch action {
	case glfw.Press:
		return triangle.ActionPress
	case glfw.Repeat:
		return triangle.ActionRepeat
	default:
		return triangle.ActionRelease
	}
}

// glfwModsToMods maps the GLFW modifier bitmask to triangle modifiers.
func glfwModsToMods(mods glfw.ModifierKey) triangle.ModifierKey {
	var out triangle.ModifierKey
	if mods&glfw.ModShift != 0 {
		out |= triangle.ModShift
	}
	if mods&glfw.ModControl != 0 {
		out |= triangle.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		out |= triangle.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		out |= triangle.ModSuper
	}
	return out
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
