package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// MockBody implements geometry.Body for testing
type MockBody struct {
	roots    []float64
	normalFn func(p core.Vec4) core.Vec4
}

func (m *MockBody) FindIntersections(core.Ray) []float64 { return m.roots }
func (m *MockBody) NormalAt(p core.Vec4) core.Vec4 { return m.normalFn(p) }
func (m *MockBody) Compose(core.Mat4) {}
func (m *MockBody) Transform() core.Mat4 { return core.Identity() }
func (m *MockBody) Inverse() core.Mat4 { return core.Identity() }
func (m *MockBody) Color() core.Color { return core.RGB(1, 1, 1) }

func newSphereScene() *scene.Scene {
	camera := geometry.NewCamera(90, core.Translator(0, 0, 4))
	light := lights.NewWhiteLight(core.NewPoint(0, 5, 5), 1)
	return scene.NewScene([]geometry.Body{geometry.NewUnitSphere()}, light, camera)
}

func TestRender_UnitSphere(t *testing.T) {
	img, err := Render(newSphereScene(), 5, 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(img.Pix) != 3*5*5 {
		t.Fatalf("Expected %d bytes, got %d", 3*5*5, len(img.Pix))
	}

	if c := img.RGBAAt(2, 2); c.R == 0 || c.R != c.G || c.G != c.B {
		t.Errorf("Expected lit grey centre pixel, got %v", c)
	}
	for _, p := range [][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}, {1, 2}} {
		if c := img.RGBAAt(p[0], p[1]); c != (color.RGBA{A: 255}) {
			t.Errorf("Expected black at %v, got %v", p, c)
		}
	}
}

func TestRender_ExactShading(t *testing.T) {
	// Wall facing the eye, light at the eye: every term is at full weight
	camera := geometry.NewCamera(90, core.Translator(0, 0, 4))
	light := lights.NewWhiteLight(core.NewPoint(0, 0, 4), 0.5)
	wall := geometry.NewQuadZPos(10, 10).Colored(core.RGB(0.2, 0.1, 0.05))
	s := scene.NewScene([]geometry.Body{wall}, light, camera)

	img, err := Render(s, 3, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// 0.2·C·I + C·I + I per channel, truncated after scaling to 255
	expected := color.RGBA{R: 158, G: 142, B: 135, A: 255}
	if got := img.RGBAAt(1, 1); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRender_ClampsBrightChannels(t *testing.T) {
	s := newSphereScene()
	s.Light = lights.NewWhiteLight(core.NewPoint(0, 0, 5), 3)

	img, err := Render(s, 5, 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c := img.RGBAAt(2, 2); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("Expected saturated centre pixel, got %v", c)
	}
}

func TestRender_InvalidDimensions(t *testing.T) {
	for _, size := range [][2]int{{1, 10}, {10, 1}, {0, 5}} {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			_, err := Render(newSphereScene(), size[0], size[1])
			if !errors.Is(err, core.ErrInvalidDimensions) {
				t.Errorf("Expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}

func TestRender_IncompleteScene(t *testing.T) {
	s := newSphereScene()
	s.Light = nil
	if _, err := Render(s, 4, 4); err == nil {
		t.Error("Expected error for a scene without a light")
	}
}

func TestRender_DegenerateGeometryBecomesError(t *testing.T) {
	s := newSphereScene()
	s.Bodies = []geometry.Body{&MockBody{
		roots: []float64{1},
		normalFn: func(core.Vec4) core.Vec4 {
			return core.NewArrow(0, 0, 0).Normalize()
		},
	}}

	_, err := Render(s, 3, 3)
	if !errors.Is(err, core.ErrDegenerateGeometry) {
		t.Errorf("Expected ErrDegenerateGeometry, got %v", err)
	}
}

func TestRaytracer_ParallelMatchesSequential(t *testing.T) {
	s, err := scene.Create("default")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sequential, err := Render(s, 40, 30)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, workers := range []int{2, 4, 7} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			rt := NewRaytracer(s, 40, 30, Config{NumWorkers: workers})
			parallel, _, err := rt.RenderPass()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !bytes.Equal(sequential.Pix, parallel.Pix) {
				t.Error("Parallel render differs from sequential render")
			}
		})
	}
}

func TestRaytracer_Stats(t *testing.T) {
	rt := NewRaytracer(newSphereScene(), 5, 5, Config{NumWorkers: 3})
	_, stats, err := rt.RenderPass()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Only the centre ray passes within one unit of the origin
	if stats.TotalPixels != 25 || stats.Hits != 1 || stats.Misses != 24 {
		t.Errorf("Expected 25 pixels, 1 hit, 24 misses, got %+v", stats)
	}
	if stats.IntersectionTests != 25 {
		t.Errorf("Expected 25 intersection tests, got %d", stats.IntersectionTests)
	}
	if stats.AverageLuminance <= 0 {
		t.Errorf("Expected positive luminance, got %f", stats.AverageLuminance)
	}
}

func TestRaytracer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rt := NewRaytracer(newSphereScene(), 8, 8, Config{NumWorkers: 2})
	if _, _, err := rt.RenderPassContext(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestImage_ToRGBA(t *testing.T) {
	img := NewImage(2, 1)
	copy(img.Pix, []uint8{10, 20, 30, 40, 50, 60})

	rgba := img.ToRGBA()
	if got := rgba.RGBAAt(1, 0); got != (color.RGBA{40, 50, 60, 255}) {
		t.Errorf("Expected {40 50 60 255}, got %v", got)
	}
	if img.At(5, 5) != (color.RGBA{}) {
		t.Error("Expected transparent colour outside the bounds")
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
}
