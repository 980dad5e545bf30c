package triangle

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// MVPUniform is the name of the mat4 uniform the shader program reads the
// model-view-projection transform from.
const MVPUniform = "MVP"

type phase int

const (
	phaseNew phase = iota
	phaseInit
	phaseLoad
	phaseRender
	phaseClosed
)

// App drives the demo through Init, Load, RenderLoop and Cleanup.
// It owns the window and every GPU object it creates. All methods must be
// called from the thread that owns the GL context.
type App struct {
	platform Platform
	dev      Device
	cfg      Config
	log      *slog.Logger
	shaderFS fs.FS

	window      Window
	program     uint32
	mvpLocation int32
	vao, vbo    uint32
	mvp         mgl32.Mat4

	cleanup cleanupStack
	phase   phase
	frames  int
}

// Option configures an App.
type Option func(*App)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(a *App) { a.cfg = cfg }
}

// WithLogger sets the logger. The default is the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithShaderFS reads shader sources from fsys instead of Config.ShaderDir.
func WithShaderFS(fsys fs.FS) Option {
	return func(a *App) { a.shaderFS = fsys }
}

// New creates a driver for the given windowing platform and GL device.
func New(platform Platform, dev Device, opts ...Option) *App {
	a := &App{
		platform:    platform,
		dev:         dev,
		cfg:         DefaultConfig(),
		log:         logger,
		mvpLocation: -1,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Run executes Init, Load and RenderLoop and always finishes with Cleanup,
// whichever phase fails. It returns the first fatal error.
func (a *App) Run() error {
	defer a.Cleanup()

	if err := a.Init(); err != nil {
		return err
	}
	if err := a.Load(); err != nil {
		return err
	}
	return a.RenderLoop()
}

// Init initializes the windowing library and creates, centers and shows
// the window with its context current and vsync enabled.
func (a *App) Init() error {
	if err := a.enter(phaseNew, phaseInit); err != nil {
		return err
	}

	a.log.Info("hello triangle", "windowing", a.platform.Version())

	if err := a.platform.Init(); err != nil {
		return fmt.Errorf("init windowing: %w", err)
	}
	a.cleanup.push("windowing library", a.platform.Terminate)

	a.platform.ApplyHints(a.cfg.Hints)

	window, err := a.platform.CreateWindow(a.cfg.Width, a.cfg.Height, a.cfg.Title)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	a.window = window
	a.cleanup.push("window", func() {
		window.ReleaseCallbacks()
		window.Destroy()
	})

	if err := a.centerWindow(); err != nil {
		return err
	}

	window.SetKeyCallback(HandleKey)

	window.MakeContextCurrent()
	if a.cfg.VSync {
		a.platform.SwapInterval(1)
	}

	window.Show()
	return nil
}

// centerWindow moves the window to the middle of the primary display.
func (a *App) centerWindow() error {
	mode, err := a.platform.PrimaryVideoMode()
	if err != nil {
		return fmt.Errorf("center window: %w", err)
	}

	width, height := a.window.Size()
	x, y := CenterPosition(mode, width, height)
	a.window.SetPos(x, y)

	a.log.Debug("window centered", "x", x, "y", y, "display", fmt.Sprintf("%dx%d", mode.Width, mode.Height))
	return nil
}

// Load initializes GL, builds the shader program and uploads the triangle.
//
// A shader that fails to load is logged and replaced by program 0, so the
// window still opens and renders blank frames.
func (a *App) Load() error {
	if err := a.enter(phaseInit, phaseLoad); err != nil {
		return err
	}

	if err := a.dev.Init(); err != nil {
		return fmt.Errorf("init opengl: %w", err)
	}
	a.log.Info("opengl ready", "version", a.dev.Version())

	a.dev.ClearColor(a.cfg.ClearColor.Clamped())

	a.loadProgram()
	a.mvpLocation = a.dev.UniformLocation(a.program, MVPUniform)
	a.mvp = a.cfg.Camera.MVP()

	a.vao = a.dev.GenVertexArray()
	vao := a.vao
	a.cleanup.push("vertex array", func() { a.dev.DeleteVertexArray(vao) })
	a.dev.BindVertexArray(vao)

	a.vbo = a.dev.GenBuffer()
	vbo := a.vbo
	a.cleanup.push("vertex buffer", func() { a.dev.DeleteBuffer(vbo) })
	a.dev.BindArrayBuffer(vbo)
	a.dev.BufferStaticData(TriangleVertices)

	if a.log.Enabled(context.Background(), slog.LevelDebug) {
		for i, v := range TransformVertices(a.mvp, TriangleVertices) {
			a.log.Debug("clip-space vertex", "index", i, "pos", v)
		}
	}
	return nil
}

func (a *App) loadProgram() {
	opts := []LoaderOption{WithBaseDir(a.cfg.ShaderDir), WithLoaderLogger(a.log)}
	if a.shaderFS != nil {
		opts = append(opts, WithFS(a.shaderFS))
	}

	program, err := LoadShaders(a.dev, a.cfg.VertexShader, a.cfg.FragmentShader, opts...)
	if err != nil {
		a.log.Error("error loading shaders", "err", err)
		a.program = 0
		return
	}

	a.program = program
	a.cleanup.push("shader program", func() { a.dev.DeleteProgram(program) })
}

// RenderLoop renders frames until the window is asked to close, or until
// Config.MaxFrames frames have been rendered when it is non-zero.
func (a *App) RenderLoop() error {
	if err := a.enter(phaseLoad, phaseRender); err != nil {
		return err
	}

	for !a.window.ShouldClose() {
		if a.cfg.MaxFrames > 0 && a.frames >= a.cfg.MaxFrames {
			break
		}
		a.frame()
	}

	a.log.Debug("render loop finished", "frames", a.frames)
	return nil
}

// frame draws the triangle once, presents it and dispatches input.
func (a *App) frame() {
	d := a.dev

	d.Clear()
	d.UseProgram(a.program)
	d.UniformMatrix4(a.mvpLocation, a.mvp)

	d.EnableVertexAttribArray(positionAttrib)
	d.BindArrayBuffer(a.vbo)
	d.VertexAttribPointer(positionAttrib, componentsPerVertex, false, 0)
	d.DrawTriangles(0, triangleVertexCount)
	d.DisableVertexAttribArray(positionAttrib)

	a.window.SwapBuffers()

	// The key callback only fires in here.
	a.platform.PollEvents()
	a.frames++
}

// Cleanup releases, in reverse order of acquisition, everything acquired so
// far: vertex buffer, vertex array, program, window callbacks and window,
// then the windowing library. Calling it again does nothing.
func (a *App) Cleanup() {
	a.cleanup.run(a.log)
	a.phase = phaseClosed
}

// enter moves the driver from phase from to phase to.
func (a *App) enter(from, to phase) error {
	if a.phase != from {
		return ErrPhaseOrder
	}
	a.phase = to
	return nil
}

// Window returns the driver's window, or nil before Init created it.
func (a *App) Window() Window {
	return a.window
}

// Program returns the linked shader program, 0 if none.
func (a *App) Program() uint32 {
	return a.program
}

// MVP returns the transform uploaded every frame.
func (a *App) MVP() mgl32.Mat4 {
	return a.mvp
}

// Frames returns the number of frames rendered so far.
func (a *App) Frames() int {
	return a.frames
}
