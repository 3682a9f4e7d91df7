package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Camera is a perspective eye at its local origin looking down local -Z.
// The horizontal field of view is given in degrees.
type Camera struct {
	fov       float64
	transform core.Mat4
}

// NewCamera creates a camera with the given horizontal field of view placed by transform
func NewCamera(fov float64, transform core.Mat4) *Camera {
	return &Camera{fov: fov, transform: transform}
}

// Apply composes a transform into the camera placement and returns it for chaining
func (c *Camera) Apply(m core.Mat4) *Camera {
	c.transform = c.transform.Mul(m)
	return c
}

// FOV returns the horizontal field of view in degrees
func (c *Camera) FOV() float64 {
	return c.fov
}

// Transform returns the camera placement
func (c *Camera) Transform() core.Mat4 {
	return c.transform
}

// Position returns the world-space eye position
func (c *Camera) Position() core.Vec4 {
	return core.NewPoint(0, 0, 0).Transform(c.transform)
}

// Grid is the virtual image plane one unit in front of the camera
type Grid struct {
	camera        *Camera
	width, height int
	anchor        core.Vec4
	horizontal    core.Vec4
	vertical      core.Vec4
}

// Grid lays out a width x height pixel grid. Both dimensions must be at
// least 2 because the increments divide by (size - 1).
func (c *Camera) Grid(width, height int) (*Grid, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("grid %dx%d: %w", width, height, core.ErrInvalidDimensions)
	}

	horizontalSpan := 2 * math.Tan(c.fov*math.Pi/360)
	verticalSpan := horizontalSpan * float64(height) / float64(width)

	horizontal := core.NewArrow(horizontalSpan/float64(width-1), 0, 0)
	vertical := core.NewArrow(0, -verticalSpan/float64(height-1), 0)

	// Top-left corner, one step left so that column 0 lands on the left edge
	anchor := core.NewArrow(-horizontalSpan/2, verticalSpan/2, -1).Subtract(horizontal)

	return &Grid{
		camera:     c,
		width:      width,
		height:     height,
		anchor:     anchor,
		horizontal: horizontal,
		vertical:   vertical,
	}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// LocalDirection returns the camera-space direction through pixel (x, y)
func (g *Grid) LocalDirection(x, y int) core.Vec4 {
	return g.anchor.
		Add(g.vertical.Multiply(float64(y))).
		Add(g.horizontal.Multiply(float64(x + 1)))
}

// Ray returns the normalized world-space ray through pixel (x, y)
func (g *Grid) Ray(x, y int) core.Ray {
	ray := core.NewRay(core.NewPoint(0, 0, 0), g.LocalDirection(x, y)).Transform(g.camera.transform)
	ray.Normalize()
	return ray
}

// Each visits every pixel row-major, top row first, left to right.
// index is the pixel's position in a row-major buffer.
func (g *Grid) Each(fn func(x, y, index int, ray core.Ray)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, y*g.width+x, g.Ray(x, y))
		}
	}
}
