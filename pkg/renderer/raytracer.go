package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Image is the rendered pixel buffer: row-major RGB triples, one byte per
// channel. It implements image.Image.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]uint8, 3*width*height)}
}

// RGBAAt returns the opaque colour of pixel (x, y)
func (img *Image) RGBAAt(x, y int) color.RGBA {
	i := 3 * (y*img.Width + x)
	return color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 255}
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements image.Image
func (img *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return color.RGBA{}
	}
	return img.RGBAAt(x, y)
}

// ToRGBA converts the buffer into an *image.RGBA for encoders and drawing
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	for i := 0; i < img.Width*img.Height; i++ {
		copy(out.Pix[4*i:4*i+3], img.Pix[3*i:3*i+3])
		out.Pix[4*i+3] = 255
	}
	return out
}

// Config contains rendering configuration
type Config struct {
	NumWorkers int               // Number of parallel row workers (0 = use CPU count)
	Logger     core.Logger       // Progress output (nil = discard)
	Material   material.Material // Shading model (nil = material.DefaultPhong)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0,
		Logger:     NewDefaultLogger(),
		Material:   material.DefaultPhong,
	}
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  *scene.Scene
	width  int
	height int
	config Config
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, width, height int, config Config) *Raytracer {
	if config.Logger == nil {
		config.Logger = NopLogger{}
	}
	if config.Material == nil {
		config.Material = material.DefaultPhong
	}
	return &Raytracer{
		scene:  s,
		width:  width,
		height: height,
		config: config,
	}
}

// Render shades every pixel of the scene in order on the calling goroutine
// and returns the clamped 8-bit buffer. Misses are black. Degenerate
// geometry met during the render is returned as an error.
func Render(s *scene.Scene, width, height int) (*Image, error) {
	rt := NewRaytracer(s, width, height, Config{NumWorkers: 1})
	img, _, err := rt.RenderPass()
	return img, err
}

// RenderPass renders the whole image once and returns it with statistics
func (rt *Raytracer) RenderPass() (*Image, RenderStats, error) {
	return rt.RenderPassContext(context.Background())
}

// RenderPassContext is RenderPass with cancellation between rows
func (rt *Raytracer) RenderPassContext(ctx context.Context) (*Image, RenderStats, error) {
	start := time.Now()

	if rt.scene == nil || rt.scene.Camera == nil || rt.scene.Light == nil {
		return nil, RenderStats{}, errors.New("scene needs a camera and a light")
	}
	grid, err := rt.scene.Camera.Grid(rt.width, rt.height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	pool := NewWorkerPool(rt.config.NumWorkers)
	rt.config.Logger.Printf("Rendering %dx%d, %d bodies (using %d workers)...\n",
		rt.width, rt.height, len(rt.scene.Bodies), pool.GetNumWorkers())

	eye := rt.scene.Camera.Position()
	colors := make([]core.Color, rt.width*rt.height)
	rowStats := make([]RenderStats, rt.height)

	err = pool.Run(ctx, rt.height, func(ctx context.Context, y int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < rt.width; x++ {
			c, hit := rt.shade(grid.Ray(x, y), eye)
			colors[y*rt.width+x] = c
			rowStats[y].record(hit, len(rt.scene.Bodies))
		}
		return nil
	})
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render %dx%d: %w", rt.width, rt.height, err)
	}

	img := toImage(colors, rt.width, rt.height)

	var stats RenderStats
	for _, rs := range rowStats {
		stats.merge(rs)
	}
	stats.AverageLuminance = CalculateAverageLuminance(img)
	stats.Duration = time.Since(start)

	rt.config.Logger.Printf("Rendered %d pixels (%d hits, %d misses) in %v\n",
		stats.TotalPixels, stats.Hits, stats.Misses, stats.Duration)

	return img, stats, nil
}

// shade returns the unclamped colour seen along a primary ray
func (rt *Raytracer) shade(ray core.Ray, eye core.Vec4) (core.Color, bool) {
	hit, ok := geometry.Cast(ray, rt.scene.Bodies)
	if !ok {
		return core.RGB(0, 0, 0), false
	}

	point := ray.At(hit.T)
	normal := hit.Body.NormalAt(point)
	return rt.config.Material.Shade(hit.Body.Color(), rt.scene.Light, point, eye, normal), true
}

// toImage clamps every channel to [0, 1] and scales it to a byte,
// truncating like an integer cast
func toImage(colors []core.Color, width, height int) *Image {
	img := NewImage(width, height)
	for i, c := range colors {
		c = c.Clamp(0, 1)
		img.Pix[3*i] = uint8(255 * c.R)
		img.Pix[3*i+1] = uint8(255 * c.G)
		img.Pix[3*i+2] = uint8(255 * c.B)
	}
	return img
}
