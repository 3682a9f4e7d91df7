package lights

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PointLight emits from a single world-space position with no falloff
type PointLight struct {
	Position  core.Vec4
	Intensity core.Color
}

// NewPointLight creates a point light at position with the given intensity
func NewPointLight(position core.Vec4, intensity core.Color) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// NewWhiteLight creates a point light with equal intensity on every channel
func NewWhiteLight(position core.Vec4, intensity float64) *PointLight {
	return NewPointLight(position, core.RGB(intensity, intensity, intensity))
}

// Type implements the Light interface
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Apply moves the light by m and returns it for chaining
func (pl *PointLight) Apply(m core.Mat4) *PointLight {
	pl.Position = pl.Position.Transform(m)
	return pl
}

// Sample implements the Light interface
func (pl *PointLight) Sample(point core.Vec4) LightSample {
	toLight := pl.Position.Subtract(point)
	toLight.W = 0
	distance := toLight.Length()

	if distance == 0 {
		// Shading point sits on the light, no meaningful direction
		return LightSample{
			Point:     pl.Position,
			Direction: core.NewArrow(0, 0, 0),
			Distance:  0,
			Intensity: pl.Intensity,
		}
	}

	return LightSample{
		Point:     pl.Position,
		Direction: toLight.Divide(distance),
		Distance:  distance,
		Intensity: pl.Intensity,
	}
}
