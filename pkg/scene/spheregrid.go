package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.RGB(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a square grid of spheres on a ground quad,
// hue varying along x and chroma along z
func NewSphereGridScene(gridSize int) *Scene {
	const (
		targetArea = 9.0
		centerX    = 4.5
		centerZ    = 4.5
	)

	// Eye above and behind the grid, tilted down towards its centre
	eyeHeight, eyeDistance := 6.0, 13.5
	tilt := math.Atan2(eyeHeight-0.8, eyeDistance)
	camera := geometry.NewCamera(60, core.Rotor(0, -tilt).Mul(core.Translator(centerX, eyeHeight, centerZ+eyeDistance)))

	light := lights.NewPointLight(core.NewPoint(20, 25, 20), core.RGB(1.1, 1.05, 1.0))

	s := NewScene(nil, light, camera)
	s.Add(NewGroundQuad(core.NewPoint(centerX, 0, centerZ), targetArea*2).Colored(core.RGB(0.5, 0.5, 0.5)))

	if gridSize < 2 {
		gridSize = 2
	}
	spacing := targetArea / float64(gridSize-1)

	// Radius scales with spacing within visible limits
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + centerX
			z := float64(j)*spacing - targetArea/2.0 + centerZ

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			// Sphere rests on the ground
			sphere := geometry.NewSphere(sphereRadius, core.NewPoint(x, sphereRadius, z)).
				Colored(oklchToRGB(lightness, chroma, hue))
			s.Add(sphere)
		}
	}

	return s
}
