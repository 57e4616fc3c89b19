package engine

import (
	"errors"
	"fmt"
	"slices"
)

// ErrSceneNotRegistered is returned when a scene id has no registered scene.
var ErrSceneNotRegistered = errors.New("engine: scene not registered")

// SceneManager maps scene ids to scene instances. Scenes are created once and
// reused every time they become active, so their state survives switches.
type SceneManager struct {
	scenes map[SceneID]Scene
}

// NewSceneManager creates an empty scene manager.
func NewSceneManager() *SceneManager {
	return &SceneManager{scenes: make(map[SceneID]Scene)}
}

// Register stores a scene under id. Registering an id again replaces the
// previous scene.
func (m *SceneManager) Register(id SceneID, scene Scene) *SceneManager {
	m.scenes[id] = scene
	return m
}

// Load returns the scene registered under id.
func (m *SceneManager) Load(id SceneID) (Scene, error) {
	scene, ok := m.scenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSceneNotRegistered, id)
	}
	return scene, nil
}

// IDs returns all registered scene ids in sorted order.
func (m *SceneManager) IDs() []SceneID {
	ids := make([]SceneID, 0, len(m.scenes))
	for id := range m.scenes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of registered scenes.
func (m *SceneManager) Len() int {
	return len(m.scenes)
}
