package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Material turns a surface colour into a lit colour at one world point
type Material interface {
	// Shade returns the unclamped colour of a surface point seen from eye.
	// normal must be a unit world-space arrow.
	Shade(surface core.Color, light lights.Light, point, eye, normal core.Vec4) core.Color
}
