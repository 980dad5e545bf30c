package triangle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds every setting the driver reads.
type Config struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`

	Hints WindowHints `yaml:"hints" toml:"hints"`
	VSync bool        `yaml:"vsync" toml:"vsync"`

	ClearColor Color `yaml:"clear_color" toml:"clear_color"`

	ShaderDir      string `yaml:"shader_dir" toml:"shader_dir"`
	VertexShader   string `yaml:"vertex_shader" toml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader" toml:"fragment_shader"`

	Camera Camera `yaml:"camera" toml:"camera"`

	// MaxFrames stops the render loop after that many frames. 0 runs until
	// the window is asked to close.
	MaxFrames int `yaml:"max_frames" toml:"max_frames"`
}

// DefaultConfig returns the demo's built-in settings: a 300x300
// "Hello World!" window with vsync, a dark blue background and the
// SimpleTransform/SingleColor shader pair.
func DefaultConfig() Config {
	return Config{
		Width:          300,
		Height:         300,
		Title:          "Hello World!",
		Hints:          DefaultWindowHints(),
		VSync:          true,
		ClearColor:     ColorDarkBlue,
		ShaderDir:      DefaultShaderDir,
		VertexShader:   "SimpleTransform.vsh",
		FragmentShader: "SingleColor.fsh",
		Camera:         DefaultCamera(),
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file and applies it
// over DefaultConfig. Fields missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings the driver cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.VertexShader == "" || c.FragmentShader == "" {
		errs = append(errs, errors.New("vertex and fragment shader names are required"))
	}
	if c.Camera.Near >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("camera near %g must be less than far %g", c.Camera.Near, c.Camera.Far))
	}
	errs = append(errs, c.Camera.validate()...)
	if c.MaxFrames < 0 {
		errs = append(errs, fmt.Errorf("max frames %d must not be negative", c.MaxFrames))
	}
	return errors.Join(errs...)
}

// validate rejects settings that make Projection non-finite.
func (c Camera) validate() []error {
	var errs []error
	if c.Ortho {
		b := c.Bounds
		if b.Left == b.Right || b.Bottom == b.Top {
			errs = append(errs, fmt.Errorf("camera ortho bounds [%g, %g]x[%g, %g] are empty", b.Left, b.Right, b.Bottom, b.Top))
		}
		return errs
	}
	if c.FOVDegrees <= 0 || c.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %g must be between 0 and 180 degrees", c.FOVDegrees))
	}
	if c.Aspect <= 0 {
		errs = append(errs, fmt.Errorf("camera aspect %g must be positive", c.Aspect))
	}
	return errs
}
