package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/weekend-pathtracer/pkg/geometry"
)

// ErrUnknownScene is returned by Create for names that match no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Create
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"` // One line description
}

type builder func(seed int64, overrides ...geometry.CameraConfig) *Scene

var builtins = map[string]struct {
	info  SceneInfo
	build builder
}{
	"default": {
		info: SceneInfo{ID: "default", DisplayName: "Default", Description: "Glass, diffuse and metal spheres on a ground sphere"},
		build: func(_ int64, o ...geometry.CameraConfig) *Scene {
			return NewDefaultScene(o...)
		},
	},
	"random": {
		info:  SceneInfo{ID: "random", DisplayName: "Random spheres", Description: "Procedural grid of small spheres with random materials"},
		build: NewRandomScene,
	},
	"single": {
		info: SceneInfo{ID: "single", DisplayName: "Single sphere", Description: "One diffuse sphere in front of a pinhole camera"},
		build: func(_ int64, o ...geometry.CameraConfig) *Scene {
			return NewSingleSphereScene(o...)
		},
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the named scene. The seed only affects procedural scenes.
func Create(name string, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.build(seed, cameraOverrides...), nil
}
