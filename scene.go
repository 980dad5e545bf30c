package triangle

import "github.com/go-gl/mathgl/mgl32"

// TriangleVertices is the demo geometry: three tightly packed xyz positions.
var TriangleVertices = []float32{
	-1.0, -1.0, 0.0,
	1.0, -1.0, 0.0,
	0.0, 1.0, 0.0,
}

// Vertex layout of TriangleVertices.
const (
	positionAttrib      uint32 = 0
	componentsPerVertex int32  = 3
	triangleVertexCount int32  = 3
)

// OrthoBounds is the view volume of an orthographic camera, in world units.
type OrthoBounds struct {
	Left   float32 `yaml:"left" toml:"left"`
	Right  float32 `yaml:"right" toml:"right"`
	Bottom float32 `yaml:"bottom" toml:"bottom"`
	Top    float32 `yaml:"top" toml:"top"`
}

// Camera describes the fixed projection and view of the scene.
type Camera struct {
	FOVDegrees float32     `yaml:"fov" toml:"fov"`
	Aspect     float32     `yaml:"aspect" toml:"aspect"`
	Near       float32     `yaml:"near" toml:"near"`
	Far        float32     `yaml:"far" toml:"far"`
	Eye        mgl32.Vec3  `yaml:"eye" toml:"eye"`
	Center     mgl32.Vec3  `yaml:"center" toml:"center"`
	Up         mgl32.Vec3  `yaml:"up" toml:"up"`
	Ortho      bool        `yaml:"ortho" toml:"ortho"`
	Bounds     OrthoBounds `yaml:"bounds" toml:"bounds"`
}

// DefaultCamera is a 45° perspective camera with a 4:3 aspect ratio and a
// 0.1-100 display range, placed at (4,3,3) looking at the origin.
func DefaultCamera() Camera {
	return Camera{
		FOVDegrees: 45,
		Aspect:     4.0 / 3.0,
		Near:       0.1,
		Far:        100,
		Eye:        mgl32.Vec3{4, 3, 3},
		Center:     mgl32.Vec3{0, 0, 0},
		Up:         mgl32.Vec3{0, 1, 0},
		Bounds:     OrthoBounds{Left: -10, Right: 10, Bottom: -10, Top: 10},
	}
}

// Projection returns the perspective or orthographic projection matrix.
func (c Camera) Projection() mgl32.Mat4 {
	if c.Ortho {
		b := c.Bounds
		return mgl32.Ortho(b.Left, b.Right, b.Bottom, b.Top, c.Near, c.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOVDegrees), c.Aspect, c.Near, c.Far)
}

// View returns the camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Center, c.Up)
}

// ModelMatrix places the model at the origin.
func ModelMatrix() mgl32.Mat4 {
	return mgl32.Ident4()
}

// MVP returns projection * view * model. Matrix multiplication applies
// right to left, so the model transform is applied to vertices first.
func (c Camera) MVP() mgl32.Mat4 {
	return c.Projection().Mul4(c.View()).Mul4(ModelMatrix())
}

// TransformVertices returns the clip-space position of each xyz triple in
// vertices under mvp.
func TransformVertices(mvp mgl32.Mat4, vertices []float32) []mgl32.Vec4 {
	out := make([]mgl32.Vec4, 0, len(vertices)/3)
	for i := 0; i+2 < len(vertices); i += 3 {
		p := mgl32.Vec4{vertices[i], vertices[i+1], vertices[i+2], 1}
		out = append(out, mvp.Mul4x1(p))
	}
	return out
}
