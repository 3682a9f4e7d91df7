package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/imageio"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneType := flag.String("scene", "", "Scene to render (see -list, default: default)")
	width := flag.Int("width", 0, "Image width in pixels (default: 400)")
	height := flag.Int("height", 0, "Image height in pixels (default: 300)")
	format := flag.String("format", "", "Output format: png, webp, tga, bmp or tiff (default: png)")
	outputDir := flag.String("output", "", "Output directory (default: output)")
	workers := flag.Int("workers", 0, "Number of parallel workers (default: NumCPU)")
	scale := flag.Int("scale", 0, "Integer upscale factor applied after rendering (default: 1)")
	caption := flag.String("caption", "", "Text drawn along the bottom of the image")
	mesh := flag.String("mesh", "", "PLY mesh to add to the scene")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		listScenes(os.Stdout)
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.<format>")
		return
	}

	if *list {
		listScenes(os.Stdout)
		return
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scene:     *sceneType,
		Width:     *width,
		Height:    *height,
		Format:    *format,
		OutputDir: *outputDir,
		Workers:   *workers,
		Scale:     *scale,
		Caption:   *caption,
		Mesh:      *mesh,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting Phong Raytracer...")

	filename, err := run(cfg, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds a built-in scene by ID
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}
	return scene.Create(sceneType)
}

// listScenes prints the scene catalogue
func listScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListBuiltInScenes() {
		fmt.Fprintf(w, "  %-14s %s\n", info.ID, info.Description)
	}
}

// run renders the configured scene and writes it under the output directory,
// returning the file name
func run(cfg config.Config, logger core.Logger) (string, error) {
	selectedScene, err := createScene(cfg.Scene)
	if err != nil {
		return "", err
	}
	if cfg.Mesh != "" {
		if err := addMesh(selectedScene, cfg.Mesh, logger); err != nil {
			return "", err
		}
	}
	logger.Printf("Using %s scene (%d primitives)...\n", cfg.Scene, selectedScene.GetPrimitiveCount())

	raytracer := renderer.NewRaytracer(selectedScene, cfg.Width, cfg.Height, renderer.Config{
		NumWorkers: cfg.Workers,
		Logger:     logger,
	})

	img, stats, err := raytracer.RenderPass()
	if err != nil {
		return "", err
	}
	logger.Printf("Average luminance: %.3f, %d intersection tests\n", stats.AverageLuminance, stats.IntersectionTests)

	// Post-process: upscale, then caption at the final resolution
	output := imageio.Scale(img, cfg.Scale)
	imageio.Caption(output, cfg.Caption)

	format := cfg.ImageFormat()
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(cfg.OutputDir, cfg.Scene, fmt.Sprintf("render_%s%s", timestamp, format.Extension()))

	if err := imageio.Save(filename, output, format); err != nil {
		return "", err
	}
	return filename, nil
}

// addMesh loads a PLY file and adds it to the scene as a polyhedron
func addMesh(s *scene.Scene, filename string, logger core.Logger) error {
	startTime := time.Now()

	data, err := loaders.LoadPLY(filename)
	if err != nil {
		return fmt.Errorf("failed to load mesh %s: %w", filename, err)
	}
	mesh, err := data.Polyhedron()
	if err != nil {
		return fmt.Errorf("failed to build mesh %s: %w", filename, err)
	}
	s.Add(mesh)

	logger.Printf("Loaded %s: %d vertices, %d triangles in %v\n",
		filepath.Base(filename), len(data.Vertices), len(data.Faces), time.Since(startTime))
	return nil
}
