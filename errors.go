package triangle

import (
	"errors"
	"fmt"
)

var (
	// ErrPhaseOrder is returned when a driver phase runs out of order or twice.
	ErrPhaseOrder = errors.New("driver phase out of order")

	// ErrNoVideoMode is returned when the primary display reports no video mode.
	ErrNoVideoMode = errors.New("primary monitor has no video mode")
)

// FileAccessError reports a shader source that could not be read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("read shader %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ShaderCompileError reports a stage that failed to compile.
// Log is the compiler's info log.
type ShaderCompileError struct {
	Path  string
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("error compiling %s shader %s: %s", e.Stage, e.Path, e.Log)
}

// ShaderLinkError reports a program that failed to link.
// Log is the linker's info log.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return "error linking shader program: " + e.Log
}
