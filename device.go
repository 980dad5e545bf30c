package triangle

import "github.com/go-gl/mathgl/mgl32"

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Device is the subset of the OpenGL 3.3 core API the demo drives.
// All methods assume the window's context is current on the calling thread.
//
// The opengl backend implements it on top of go-gl; tests use a recording fake.
type Device interface {
	// Init loads the GL function pointers. Call once after MakeContextCurrent.
	Init() error
	// Version returns the GL_VERSION string.
	Version() string

	ClearColor(c Color)
	// Clear clears the color and depth buffers.
	Clear()

	CreateShader(stage ShaderStage) uint32
	// CompileShader uploads source and compiles it. When compilation fails
	// ok is false and log holds the compiler's info log.
	CompileShader(shader uint32, source string) (ok bool, log string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	// LinkProgram links the attached stages. When linking fails ok is false
	// and log holds the linker's info log.
	LinkProgram(program uint32) (ok bool, log string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns -1 when the program has no active uniform
	// with that name.
	UniformLocation(program uint32, name string) int32
	// UniformMatrix4 writes a column-major 4x4 matrix. Location -1 is a no-op.
	UniformMatrix4(location int32, m mgl32.Mat4)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	// BufferStaticData uploads data into the currently bound array buffer.
	BufferStaticData(data []float32)
	DeleteBuffer(vbo uint32)

	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	// VertexAttribPointer describes float attributes read from the bound
	// array buffer starting at offset 0.
	VertexAttribPointer(index uint32, size int32, normalized bool, stride int32)
	// DrawTriangles draws count vertices starting at first as GL_TRIANGLES.
	DrawTriangles(first, count int32)
}
