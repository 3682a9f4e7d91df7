package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// pyramidVertices is a square-based pyramid with its base on y=0
var pyramidVertices = []core.Vec4{
	core.NewPoint(-1, 0, -1),
	core.NewPoint(1, 0, -1),
	core.NewPoint(1, 0, 1),
	core.NewPoint(-1, 0, 1),
	core.NewPoint(0, 1.5, 0),
}

// pyramidFaces are wound so that every normal points outward
var pyramidFaces = [][3]int{
	{3, 2, 4}, // +Z
	{2, 1, 4}, // +X
	{1, 0, 4}, // -Z
	{0, 3, 4}, // -X
	{0, 1, 2}, // base
	{0, 2, 3}, // base
}

// NewTriangleMeshScene creates a scene showcasing triangle and mesh geometry:
// a pyramid polyhedron flanked by two free-standing triangles
func NewTriangleMeshScene() (*Scene, error) {
	camera := geometry.NewCamera(70, core.Rotor(0, -0.3).Mul(core.Translator(0, 2, 5)))
	light := lights.NewWhiteLight(core.NewPoint(-3, 6, 4), 1)

	s := NewScene(nil, light, camera)
	s.Add(NewGroundQuad(core.NewPoint(0, 0, 0), 12).Colored(core.RGB(0.8, 0.8, 0.8)))

	pyramid, err := geometry.NewPolyhedron(pyramidVertices, pyramidFaces)
	if err != nil {
		return nil, fmt.Errorf("pyramid: %w", err)
	}
	pyramid.Colored(core.RGB(0.9, 0.6, 0.2)).Apply(core.Rotor(1, 0.4))
	s.Add(pyramid)

	left, err := geometry.NewTriangle(
		core.NewPoint(-3.2, 0, -0.5),
		core.NewPoint(-1.8, 0, -0.5),
		core.NewPoint(-2.5, 1.6, -0.5),
	)
	if err != nil {
		return nil, fmt.Errorf("left triangle: %w", err)
	}
	right, err := geometry.NewTriangle(
		core.NewPoint(1.8, 0, -0.5),
		core.NewPoint(3.2, 0, -0.5),
		core.NewPoint(2.5, 1.6, -0.5),
	)
	if err != nil {
		return nil, fmt.Errorf("right triangle: %w", err)
	}
	s.Add(left.Colored(core.RGB(0.2, 0.4, 0.9)), right.Colored(core.RGB(0.9, 0.2, 0.4)))

	return s, nil
}
