/*
Package triangle draws a single static triangle with OpenGL 3.3 core.

The program is a linear sequence of four phases driven by App:

  - Init: initialize the windowing library, create a hidden 300x300 window,
    center it on the primary display, install the key callback, make the
    context current, enable vsync and show the window.
  - Load: load GL, build the shader program, compute the MVP transform and
    upload the triangle's vertex buffer.
  - RenderLoop: clear, draw three vertices as one triangle, swap buffers and
    poll events until the window is asked to close.
  - Cleanup: release everything acquired, in reverse order.

# Quick Start

	app := triangle.New(opengl.NewGLFWPlatform(), opengl.NewDevice())
	if err := app.Run(); err != nil {
	    log.Fatal(err)
	}

Run always reaches Cleanup, whichever phase fails.

# Backends

The package only talks to the GPU through Device and to the windowing
library through Platform and Window. The backend/opengl package implements
them with go-gl's OpenGL 3.3 core bindings and GLFW 3.3. Tests substitute
recording fakes.

# Shaders

LoadShaders reads a vertex and a fragment shader from a base directory
(resources by default) or any fs.FS, compiles and links them, and deletes
the intermediate shader objects. Failures are typed:

	*FileAccessError     the source could not be read
	*ShaderCompileError  a stage failed to compile; Log has the compiler output
	*ShaderLinkError     the program failed to link; Log has the linker output

App logs a shader failure and keeps running with program 0, so the window
still opens and shows the clear color.

The vertex shader must declare

	layout(location = 0) in vec3 vertexPosition_modelspace;
	uniform mat4 MVP;

A program without an MVP uniform still runs; the matrix upload is a no-op.

# Configuration

DefaultConfig holds the built-in settings. LoadConfig overlays a YAML or
TOML file on top of them:

	width: 300
	title: Hello World!
	clear_color: {r: 0, g: 0, b: 0.4, a: 0}
	camera:
	  fov: 45
	  eye: [4, 3, 3]
	  ortho: false

# Logging

The package logs through log/slog to stderr at Info level. SetVerbose(true)
enables Debug output: shader compilation, window placement, clip-space
vertices and every resource release.
*/
package triangle
