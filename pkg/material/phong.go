package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Phong is the ambient + diffuse + specular reflection model
type Phong struct {
	Ambient   float64 // Fraction of the lit colour applied everywhere
	Shininess float64 // Specular exponent
}

// DefaultPhong is the model used by the renderer unless configured otherwise
var DefaultPhong = Phong{Ambient: 0.2, Shininess: 10}

// Lighting shades a point with DefaultPhong
func Lighting(surface core.Color, light lights.Light, point, eye, normal core.Vec4) core.Color {
	return DefaultPhong.Shade(surface, light, point, eye, normal)
}

// Shade implements the Material interface
func (p Phong) Shade(surface core.Color, light lights.Light, point, eye, normal core.Vec4) core.Color {
	sample := light.Sample(point)

	effective := surface.Blend(sample.Intensity)
	effective.A = surface.A
	ambient := effective.Multiply(p.Ambient)

	// Light behind the surface only contributes ambient
	lightDotNormal := sample.Direction.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}
	diffuse := effective.Multiply(lightDotNormal)

	toEye := eye.Subtract(point)
	toEye.W = 0
	if toEye.Length() == 0 {
		return ambient.Add(diffuse)
	}
	toEye = toEye.Normalize()

	reflected := sample.Direction.Negate().Reflect(normal)
	reflectDotEye := reflected.Dot(toEye)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}
	specular := sample.Intensity.Multiply(math.Pow(reflectDotEye, p.Shininess))

	return ambient.Add(diffuse).Add(specular)
}
