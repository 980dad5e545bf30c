package triangle

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultShaderDir is the directory shader sources are read from when no
// base directory is given.
const DefaultShaderDir = "resources"

type loaderOptions struct {
	baseDir string
	fsys    fs.FS
	log     *slog.Logger
}

// LoaderOption configures LoadShaders.
type LoaderOption func(*loaderOptions)

// WithBaseDir sets the directory shader paths are relative to. An empty
// dir means the working directory.
func WithBaseDir(dir string) LoaderOption {
	return func(o *loaderOptions) { o.baseDir = dir }
}

// WithFS reads shader sources from fsys. The base directory is ignored and
// names must be valid fs.FS paths.
func WithFS(fsys fs.FS) LoaderOption {
	return func(o *loaderOptions) { o.fsys = fsys }
}

// WithLoaderLogger sets the logger used for compile diagnostics.
func WithLoaderLogger(l *slog.Logger) LoaderOption {
	return func(o *loaderOptions) { o.log = l }
}

// LoadShaders reads, compiles and links a vertex and a fragment shader into
// one program and returns its id.
//
// Errors are *FileAccessError, *ShaderCompileError or *ShaderLinkError. On
// any error the returned id is 0 and every GL object created along the way
// has been deleted. On success the per-stage shader objects are detached
// and deleted; only the program remains.
func LoadShaders(dev Device, vertexPath, fragmentPath string, opts ...LoaderOption) (uint32, error) {
	o := loaderOptions{
		baseDir: DefaultShaderDir,
		log:     logger,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fsys != nil {
		o.baseDir = ""
	}

	vertexShader, err := o.loadShader(dev, vertexPath, StageVertex)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := o.loadShader(dev, fragmentPath, StageFragment)
	if err != nil {
		dev.DeleteShader(vertexShader)
		return 0, err
	}

	program := dev.CreateProgram()
	dev.AttachShader(program, vertexShader)
	dev.AttachShader(program, fragmentShader)
	ok, log := dev.LinkProgram(program)

	// The stages are part of the program now, or useless if linking failed.
	dev.DetachShader(program, vertexShader)
	dev.DetachShader(program, fragmentShader)
	dev.DeleteShader(vertexShader)
	dev.DeleteShader(fragmentShader)

	if !ok {
		dev.DeleteProgram(program)
		return 0, &ShaderLinkError{Log: log}
	}

	o.log.Debug("shader program linked", "program", program, "vertex", vertexPath, "fragment", fragmentPath)
	return program, nil
}

// loadShader reads and compiles a single stage.
func (o *loaderOptions) loadShader(dev Device, name string, stage ShaderStage) (uint32, error) {
	path := o.resolve(name)

	source, err := o.read(name, path)
	if err != nil {
		return 0, &FileAccessError{Path: path, Err: err}
	}

	shader := dev.CreateShader(stage)
	ok, log := dev.CompileShader(shader, string(source))
	if !ok {
		dev.DeleteShader(shader)
		return 0, &ShaderCompileError{Path: path, Stage: stage, Log: log}
	}

	o.log.Debug("shader compiled", "stage", stage, "path", path, "shader", shader)
	return shader, nil
}

// resolve returns the path name is read from. Absolute names are used as
// is; relative ones, including ones that climb out with "..", are joined
// to the base directory.
func (o *loaderOptions) resolve(name string) string {
	if o.fsys != nil || o.baseDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.baseDir, name)
}

func (o *loaderOptions) read(name, path string) ([]byte, error) {
	if o.fsys != nil {
		return fs.ReadFile(o.fsys, filepath.ToSlash(name))
	}
	return os.ReadFile(path)
}
