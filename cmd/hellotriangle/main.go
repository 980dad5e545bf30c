// Hellotriangle opens a window and draws a single static triangle under a
// fixed model-view-projection transform. Release Escape to quit.
//
// Usage:
//
//	go run ./cmd/hellotriangle                      # defaults, shaders from ./resources
//	go run ./cmd/hellotriangle -config resources/hellotriangle.yaml -v
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	triangle "github.com/go-theft-auto/hellotriangle"
	"github.com/go-theft-auto/hellotriangle/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML or TOML config file")
	shaderDir := flag.String("shaders", "", "directory containing the shader sources")
	frames := flag.Int("frames", -1, "stop after this many frames (0 runs until the window closes)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	triangle.SetVerbose(*verbose)

	cfg := triangle.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = triangle.LoadConfig(*configPath)
		if err != nil {
			return err
		}
	}
	if *shaderDir != "" {
		cfg.ShaderDir = *shaderDir
	}
	if *frames >= 0 {
		cfg.MaxFrames = *frames
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	app := triangle.New(opengl.NewGLFWPlatform(), opengl.NewDevice(), triangle.WithConfig(cfg))
	return app.Run()
}
