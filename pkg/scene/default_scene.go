package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewDefaultScene creates three spheres lit from above and behind the eye
func NewDefaultScene() *Scene {
	camera := geometry.NewCamera(90, core.Translator(0, 0, 4))
	light := lights.NewWhiteLight(core.NewPoint(0, 6, 6), 1.2)

	orange := geometry.NewSphere(3, core.NewPoint(0, 0, 0)).
		Colored(core.RGB(0.9, 0.3, 0)).
		Apply(core.Translator(3, -1, -2))
	teal := geometry.NewSphere(2, core.NewPoint(0, 0, 0)).
		Colored(core.RGB(0, 0.6, 0.6)).
		Apply(core.Translator(-2, 2, -4))
	lime := geometry.NewUnitSphere().
		Colored(core.RGB(0.7, 1, 0)).
		Apply(core.Translator(-2, 0, 1))

	return NewScene([]geometry.Body{orange, teal, lime}, light, camera)
}
