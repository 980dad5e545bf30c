package triangle_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	triangle "github.com/go-theft-auto/hellotriangle"
)

// recorder collects release events from every fake in call order.
type recorder struct {
	releases []string
}

func (r *recorder) release(format string, args ...any) {
	r.releases = append(r.releases, fmt.Sprintf(format, args...))
}

// quietLogger discards log output in tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeShader struct {
	stage  triangle.ShaderStage
	source string
}

// drawCall is the pipeline state captured at each DrawTriangles.
type drawCall struct {
	program       uint32
	buffer        uint32
	attribEnabled bool
	size          int32
	normalized    bool
	stride        int32
	mvp           mgl32.Mat4
	mvpSet        bool
	first, count  int32
}

// fakeDevice is a recording triangle.Device. Object ids come from a single
// counter starting at 1, so a successful Load yields vertex shader 1,
// fragment shader 2, program 3, vertex array 4, vertex buffer 5.
type fakeDevice struct {
	rec     *recorder
	initErr error
	nextID  uint32

	// panicOnInit makes Init panic, as a broken driver binding would.
	panicOnInit bool

	// noMVP makes UniformLocation report the uniform as absent.
	noMVP bool

	shaders    map[uint32]fakeShader
	programs   map[uint32]bool
	attached   map[uint32][]uint32
	detached   []uint32
	vaos       map[uint32]bool
	buffers    map[uint32]bool
	bufferData map[uint32][]float32

	clearColor triangle.Color
	clears     int

	currentProgram uint32
	boundBuffer    uint32
	boundVAO       uint32
	attribEnabled  bool
	pointer        drawCall
	uniforms       map[int32]mgl32.Mat4
	uniformWrites  int
	draws          []drawCall
}

func newFakeDevice(rec *recorder) *fakeDevice {
	return &fakeDevice{
		rec:        rec,
		shaders:    make(map[uint32]fakeShader),
		programs:   make(map[uint32]bool),
		attached:   make(map[uint32][]uint32),
		vaos:       make(map[uint32]bool),
		buffers:    make(map[uint32]bool),
		bufferData: make(map[uint32][]float32),
		uniforms:   make(map[int32]mgl32.Mat4),
	}
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) Init() error {
	if d.panicOnInit {
		panic("gl: function not loaded")
	}
	return d.initErr
}

func (d *fakeDevice) Version() string { return "3.3.0 fake" }

func (d *fakeDevice) ClearColor(c triangle.Color) { d.clearColor = c }
func (d *fakeDevice) Clear()                      { d.clears++ }

func (d *fakeDevice) CreateShader(stage triangle.ShaderStage) uint32 {
	id := d.id()
	d.shaders[id] = fakeShader{stage: stage}
	return id
}

// CompileShader rejects sources with unbalanced braces, the way a real
// compiler rejects a truncated main.
func (d *fakeDevice) CompileShader(shader uint32, source string) (bool, string) {
	s := d.shaders[shader]
	s.source = source
	d.shaders[shader] = s
	if strings.Count(source, "{") != strings.Count(source, "}") {
		line := strings.Count(source, "\n") + 1
		return false, fmt.Sprintf("0:%d(1): error: syntax error, unexpected end of file", line)
	}
	return true, ""
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	delete(d.shaders, shader)
	d.rec.release("DeleteShader %d", shader)
}

func (d *fakeDevice) CreateProgram() uint32 {
	id := d.id()
	d.programs[id] = true
	return id
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.attached[program] = append(d.attached[program], shader)
}

func (d *fakeDevice) DetachShader(program, shader uint32) {
	d.detached = append(d.detached, shader)
}

// LinkProgram fails when a fragment shader input has no matching vertex
// shader output.
func (d *fakeDevice) LinkProgram(program uint32) (bool, string) {
	outputs := map[string]bool{}
	var inputs []string
	for _, id := range d.attached[program] {
		s := d.shaders[id]
		switch s.stage {
		case triangle.StageVertex:
			for _, name := range declared(s.source, "out") {
				outputs[name] = true
			}
		case triangle.StageFragment:
			inputs = append(inputs, declared(s.source, "in")...)
		}
	}
	for _, name := range inputs {
		if !outputs[name] {
			return false, fmt.Sprintf("error: fragment shader input `%s' has no matching output in the previous stage", name)
		}
	}
	return true, ""
}

// declared returns the names of variables declared with qualifier.
func declared(source, qualifier string) []string {
	var names []string
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, qualifier+" ") || strings.Contains(line, "layout") {
			continue
		}
		fields := strings.Fields(strings.TrimSuffix(line, ";"))
		names = append(names, fields[len(fields)-1])
	}
	return names
}

func (d *fakeDevice) UseProgram(program uint32) { d.currentProgram = program }

func (d *fakeDevice) DeleteProgram(program uint32) {
	delete(d.programs, program)
	d.rec.release("DeleteProgram %d", program)
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	if program == 0 || d.noMVP || name != triangle.MVPUniform {
		return -1
	}
	return 7
}

func (d *fakeDevice) UniformMatrix4(location int32, m mgl32.Mat4) {
	d.uniformWrites++
	if location == -1 {
		return
	}
	d.uniforms[location] = m
}

func (d *fakeDevice) GenVertexArray() uint32 {
	id := d.id()
	d.vaos[id] = true
	return id
}

func (d *fakeDevice) BindVertexArray(vao uint32) { d.boundVAO = vao }

func (d *fakeDevice) DeleteVertexArray(vao uint32) {
	delete(d.vaos, vao)
	d.rec.release("DeleteVertexArray %d", vao)
}

func (d *fakeDevice) GenBuffer() uint32 {
	id := d.id()
	d.buffers[id] = true
	return id
}

func (d *fakeDevice) BindArrayBuffer(vbo uint32) { d.boundBuffer = vbo }

func (d *fakeDevice) BufferStaticData(data []float32) {
	d.bufferData[d.boundBuffer] = append([]float32(nil), data...)
}

func (d *fakeDevice) DeleteBuffer(vbo uint32) {
	delete(d.buffers, vbo)
	d.rec.release("DeleteBuffer %d", vbo)
}

func (d *fakeDevice) EnableVertexAttribArray(index uint32)  { d.attribEnabled = true }
func (d *fakeDevice) DisableVertexAttribArray(index uint32) { d.attribEnabled = false }

func (d *fakeDevice) VertexAttribPointer(index uint32, size int32, normalized bool, stride int32) {
	d.pointer = drawCall{size: size, normalized: normalized, stride: stride}
}

func (d *fakeDevice) DrawTriangles(first, count int32) {
	call := d.pointer
	call.program = d.currentProgram
	call.buffer = d.boundBuffer
	call.attribEnabled = d.attribEnabled
	call.first, call.count = first, count
	call.mvp, call.mvpSet = d.uniforms[7]
	d.draws = append(d.draws, call)
}

// keyEvent is a scripted key event delivered during PollEvents.
type keyEvent struct {
	key    triangle.Key
	action triangle.Action
}

// fakePlatform is a recording triangle.Platform.
type fakePlatform struct {
	rec       *recorder
	initErr   error
	createErr error
	noMode    bool
	mode      triangle.VideoMode

	initialized  bool
	hints        triangle.WindowHints
	swapInterval int
	window       *fakeWindow
	polls        int

	// script[i] is delivered on the i-th PollEvents call.
	script [][]keyEvent
	// closeOnPoll makes the window system request a close on that poll
	// (1-based); 0 never does.
	closeOnPoll int
}

func newFakePlatform(rec *recorder) *fakePlatform {
	return &fakePlatform{
		rec:  rec,
		mode: triangle.VideoMode{Width: 1920, Height: 1080},
	}
}

func (p *fakePlatform) Init() error {
	if p.initErr != nil {
		return p.initErr
	}
	p.initialized = true
	return nil
}

func (p *fakePlatform) Terminate() {
	p.initialized = false
	p.rec.release("Terminate")
}

func (p *fakePlatform) Version() string { return "3.3.10 fake" }

func (p *fakePlatform) ApplyHints(h triangle.WindowHints) { p.hints = h }

func (p *fakePlatform) CreateWindow(width, height int, title string) (triangle.Window, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.window = &fakeWindow{rec: p.rec, width: width, height: height, title: title}
	return p.window, nil
}

func (p *fakePlatform) PrimaryVideoMode() (triangle.VideoMode, error) {
	if p.noMode {
		return triangle.VideoMode{}, triangle.ErrNoVideoMode
	}
	return p.mode, nil
}

func (p *fakePlatform) SwapInterval(interval int) { p.swapInterval = interval }

func (p *fakePlatform) PollEvents() {
	i := p.polls
	p.polls++
	if i < len(p.script) && p.window.keyCallback != nil {
		for _, ev := range p.script[i] {
			p.window.keyCallback(p.window, ev.key, 0, ev.action, 0)
		}
	}
	if p.closeOnPoll > 0 && p.polls == p.closeOnPoll {
		p.window.shouldClose = true
	}
}

// fakeWindow is a recording triangle.Window.
type fakeWindow struct {
	rec           *recorder
	width, height int
	title         string

	x, y        int
	keyCallback triangle.KeyCallback
	current     bool
	shown       bool
	shouldClose bool
	swaps       int
	destroyed   bool
}

func (w *fakeWindow) Size() (int, int)                       { return w.width, w.height }
func (w *fakeWindow) SetPos(x, y int)                        { w.x, w.y = x, y }
func (w *fakeWindow) SetKeyCallback(cb triangle.KeyCallback) { w.keyCallback = cb }
func (w *fakeWindow) MakeContextCurrent()                    { w.current = true }
func (w *fakeWindow) Show()                                  { w.shown = true }
func (w *fakeWindow) ShouldClose() bool                      { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(value bool)              { w.shouldClose = value }
func (w *fakeWindow) SwapBuffers()                           { w.swaps++ }

func (w *fakeWindow) ReleaseCallbacks() {
	w.keyCallback = nil
	w.rec.release("ReleaseCallbacks")
}

func (w *fakeWindow) Destroy() {
	w.destroyed = true
	w.rec.release("Destroy")
}

var errFake = errors.New("fake failure")
