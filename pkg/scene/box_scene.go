package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewBoxScene creates two boxes tumbled by versor rotations over a ground quad
func NewBoxScene() (*Scene, error) {
	camera := geometry.NewCamera(60, core.Rotor(0, -0.25).Mul(core.Translator(0, 2, 6)))
	light := lights.NewWhiteLight(core.NewPoint(4, 6, 5), 1.1)

	s := NewScene(nil, light, camera)
	s.Add(NewGroundQuad(core.NewPoint(0, -1, 0), 10).Colored(core.RGB(0.6, 0.6, 0.65)))

	tilt, err := core.NewVersor(math.Pi/6, 1, 0, 0)
	if err != nil {
		return nil, err
	}
	spin, err := core.NewVersor(math.Pi/4, 0, 1, 0)
	if err != nil {
		return nil, err
	}

	cube, err := geometry.NewBox(core.NewPoint(-0.75, -0.75, -0.75), core.NewPoint(0.75, 0.75, 0.75))
	if err != nil {
		return nil, fmt.Errorf("cube: %w", err)
	}
	cube.Colored(core.RGB(0.2, 0.7, 0.9)).
		Apply(tilt.Mul(spin).Matrix()).
		Apply(core.Translator(-1.2, 0.3, 0))

	slab, err := geometry.NewBox(core.NewPoint(-0.5, -1, -0.8), core.NewPoint(0.5, -0.2, 0.8))
	if err != nil {
		return nil, fmt.Errorf("slab: %w", err)
	}
	slab.Colored(core.RGB(0.9, 0.4, 0.2)).
		Apply(spin.Matrix()).
		Apply(core.Translator(1.4, 0, -0.5))

	s.Add(cube, slab)
	return s, nil
}
