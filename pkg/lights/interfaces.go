package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light is a source that can be sampled from a shading point
type Light interface {
	Type() LightType

	// Sample returns the light as seen from a world-space point.
	// Direction points FROM the shading point TO the light.
	Sample(point core.Vec4) LightSample
}

// LightSample describes a light as seen from one shading point
type LightSample struct {
	Point     core.Vec4  // Light position in world space
	Direction core.Vec4  // Unit arrow from the shading point to the light
	Distance  float64    // Distance to the light
	Intensity core.Color // Emitted intensity per channel
}
