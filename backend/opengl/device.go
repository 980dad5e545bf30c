// Package opengl implements the triangle Device, Platform and Window
// boundaries with OpenGL 3.3 core and GLFW 3.3.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	triangle "github.com/go-theft-auto/hellotriangle"
)

// Device implements triangle.Device with go-gl.
type Device struct{}

var _ triangle.Device = (*Device)(nil)

// NewDevice returns a GL device. Call Init once the context is current.
func NewDevice() *Device {
	return &Device{}
}

// Init loads the GL function pointers for the current context.
func (d *Device) Init() error {
	return gl.Init()
}

// Version returns the GL_VERSION string.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) ClearColor(c triangle.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) CreateShader(stage triangle.ShaderStage) uint32 {
	return gl.CreateShader(shaderType(stage))
}

// CompileShader uploads source and compiles it, returning the info log on
// failure.
func (d *Device) CompileShader(shader uint32, source string) (bool, string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		return false, infoLog(logLength, func(length int32, buf *uint8) {
			gl.GetShaderInfoLog(shader, length, nil, buf)
		})
	}
	return true, ""
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

// LinkProgram links program, returning the info log on failure.
func (d *Device) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		return false, infoLog(logLength, func(length int32, buf *uint8) {
			gl.GetProgramInfoLog(program, length, nil, buf)
		})
	}
	return true, ""
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// UniformLocation returns -1 for an unknown uniform or program 0.
func (d *Device) UniformLocation(program uint32, name string) int32 {
	if program == 0 {
		return -1
	}
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// UniformMatrix4 uploads m to the bound program. mgl32 matrices are
// column-major, so no transpose is needed.
func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Device) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (d *Device) BindArrayBuffer(vbo uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
}

// BufferStaticData uploads data into the bound array buffer as GL_STATIC_DRAW.
func (d *Device) BufferStaticData(data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) DeleteBuffer(vbo uint32) {
	gl.DeleteBuffers(1, &vbo)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Device) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (d *Device) VertexAttribPointer(index uint32, size int32, normalized bool, stride int32) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, normalized, stride, 0)
}

func (d *Device) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// shaderType maps a stage to its GL enum.
func shaderType(stage triangle.ShaderStage) uint32 {
	switch stage {
	case triangle.StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		return gl.VERTEX_SHADER
	}
}

// infoLog reads a shader or program info log of the given length.
func infoLog(length int32, get func(length int32, buf *uint8)) string {
	log := make([]byte, length+1)
	get(length, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}
