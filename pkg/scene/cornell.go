package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewCornellScene creates an open-fronted room built from the six axis
// aligned quad faces, each turned so its normal points into the room
func NewCornellScene() *Scene {
	const roomSize = 2.0
	half := roomSize / 2

	camera := geometry.NewCamera(50, core.Translator(0, 0, 3.2))
	light := lights.NewWhiteLight(core.NewPoint(0, 0.8, 0.4), 1)

	white := core.RGB(0.73, 0.73, 0.73)
	red := core.RGB(0.65, 0.05, 0.05)
	green := core.RGB(0.12, 0.45, 0.15)

	floor := geometry.NewQuadYPos(roomSize, roomSize).
		Colored(white).
		Apply(core.Translator(0, -half, 0))
	ceiling := geometry.NewQuadYNeg(roomSize, roomSize).
		Colored(white).
		Apply(core.Translator(0, half, 0))
	backWall := geometry.NewQuadZPos(roomSize, roomSize).
		Colored(white).
		Apply(core.Translator(0, 0, -half))
	leftWall := geometry.NewQuadXPos(roomSize, roomSize).
		Colored(red).
		Apply(core.Translator(-half, 0, 0))
	rightWall := geometry.NewQuadXNeg(roomSize, roomSize).
		Colored(green).
		Apply(core.Translator(half, 0, 0))

	leftSphere := geometry.NewSphere(0.3, core.NewPoint(-0.35, -0.7, -0.3)).
		Colored(core.RGB(0.8, 0.8, 0.9))
	rightSphere := geometry.NewSphere(0.35, core.NewPoint(0.35, -0.65, 0.2)).
		Colored(core.RGB(0.9, 0.7, 0.3))

	return NewScene([]geometry.Body{
		floor, ceiling, backWall, leftWall, rightWall,
		leftSphere, rightSphere,
	}, light, camera)
}
