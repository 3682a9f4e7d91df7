package scene

import (
	"errors"
	"fmt"
)

// ErrUnknownScene is returned by Create for an ID with no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // Always "builtin"
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

const builtInGroup = "Built-in Scenes"

// sphereGridSize keeps the grid small enough for a brute-force renderer
const sphereGridSize = 8

type builtIn struct {
	info   SceneInfo
	create func() (*Scene, error)
}

func infallible(f func() *Scene) func() (*Scene, error) {
	return func() (*Scene, error) { return f(), nil }
}

var builtIns = []builtIn{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Three coloured spheres under a single point light",
		},
		create: infallible(NewDefaultScene),
	},
	{
		info: SceneInfo{
			ID:          "cornell",
			Name:        "Cornell Box",
			Description: "Room of axis-aligned quads with two spheres",
		},
		create: infallible(NewCornellScene),
	},
	{
		info: SceneInfo{
			ID:          "sphere-grid",
			Name:        "Sphere Grid",
			Description: fmt.Sprintf("%dx%d grid of OKLCH-coloured spheres", sphereGridSize, sphereGridSize),
		},
		create: infallible(func() *Scene { return NewSphereGridScene(sphereGridSize) }),
	},
	{
		info: SceneInfo{
			ID:          "triangle-mesh",
			Name:        "Triangle Mesh",
			Description: "Pyramid polyhedron between two triangles",
		},
		create: NewTriangleMeshScene,
	},
	{
		info: SceneInfo{
			ID:          "boxes",
			Name:        "Boxes",
			Description: "Boxes rotated by composed versors",
		},
		create: NewBoxScene,
	},
}

// ListBuiltInScenes returns the catalogue of scenes that Create can build
func ListBuiltInScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtIns))
	for i, b := range builtIns {
		info := b.info
		info.DisplayName = info.Name
		info.Group = builtInGroup
		info.Type = "builtin"
		scenes[i] = info
	}
	return scenes
}

// ListAllScenes returns every scene, grouped by category
func ListAllScenes() ScenesResponse {
	return ScenesResponse{
		Groups: []SceneGroup{{Name: builtInGroup, Scenes: ListBuiltInScenes()}},
	}
}

// Create builds the built-in scene with the given ID
func Create(id string) (*Scene, error) {
	for _, b := range builtIns {
		if b.info.ID == id {
			s, err := b.create()
			if err != nil {
				return nil, fmt.Errorf("failed to create scene %q: %w", id, err)
			}
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownScene, id)
}
