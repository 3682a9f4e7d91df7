package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera *geometry.Camera
	Bodies []geometry.Body    // Objects in the scene, in enumeration order
	Light  *lights.PointLight // The single light source
}

// NewScene creates a scene from its bodies, one light and one camera
func NewScene(bodies []geometry.Body, light *lights.PointLight, camera *geometry.Camera) *Scene {
	return &Scene{
		Camera: camera,
		Bodies: append([]geometry.Body(nil), bodies...),
		Light:  light,
	}
}

// Add appends bodies to the scene. Bodies are never removed.
func (s *Scene) Add(bodies ...geometry.Body) *Scene {
	s.Bodies = append(s.Bodies, bodies...)
	return s
}

// Apply composes a transform into every body in the scene
func (s *Scene) Apply(m core.Mat4) *Scene {
	for _, b := range s.Bodies {
		b.Compose(m)
	}
	return s
}

// Cast returns the nearest non-negative hit of the ray against the scene
func (s *Scene) Cast(ray core.Ray) (geometry.Intersection, bool) {
	return geometry.Cast(ray, s.Bodies)
}

// NewGroundQuad creates a horizontal square centred at the given point
// with its normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec4, size float64) *geometry.Quad {
	return geometry.NewQuadYPos(size, size).Apply(core.Translator(center.X, center.Y, center.Z))
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, b := range s.Bodies {
		count += countPrimitivesInBody(b)
	}
	return count
}

// countPrimitivesInBody counts primitives in a single body, handling meshes
func countPrimitivesInBody(b geometry.Body) int {
	switch obj := b.(type) {
	case *geometry.Polyhedron:
		// Meshes contain one primitive per triangle
		return len(obj.Indices())
	default:
		return 1
	}
}
