package system

import (
	"github.com/milk9111/blockdash/common"
	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/levels"
	"github.com/milk9111/blockdash/prefabs"
)

// Resources are the loaded tuning specs and the descriptor store shared by
// the session systems.
type Resources struct {
	Catalog *prefabs.BlockCatalog
	Player  *prefabs.PlayerSpec
	Camera  *prefabs.CameraSpec
	Editor  *prefabs.EditorSpec
	Store   levels.Store
}

// LoadResources reads every prefab spec. The store's block set is the
// loaded catalog. Without a level path the Editor's save path is used,
// falling back to the built-in level until something is saved there.
func LoadResources(levelPath string) (*Resources, error) {
	catalog, err := prefabs.LoadBlockCatalog()
	if err != nil {
		return nil, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	camera, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	editor, err := prefabs.LoadEditorSpec()
	if err != nil {
		return nil, err
	}
	store := levels.Store{Path: levelPath, Blocks: catalog}
	if levelPath == "" {
		store.Path = editor.SavePath
		store.Fallback = true
	}
	return &Resources{
		Catalog: catalog,
		Player:  player,
		Camera:  camera,
		Editor:  editor,
		Store:   store,
	}, nil
}

func gameStateComponent[T any](w *ecs.World, kind component.ComponentKind[T]) (*T, bool) {
	e, ok := w.First(component.GameStateTagComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, kind)
}

func modeState(w *ecs.World) (*component.ModeState, bool) {
	return gameStateComponent(w, component.ModeStateComponent.Kind())
}

func inputState(w *ecs.World) (*component.Input, bool) {
	return gameStateComponent(w, component.InputComponent.Kind())
}

func editorSelection(w *ecs.World) (*component.EditorSelection, bool) {
	return gameStateComponent(w, component.EditorSelectionComponent.Kind())
}

func attemptCounter(w *ecs.World) (*component.AttemptCounter, bool) {
	return gameStateComponent(w, component.AttemptCounterComponent.Kind())
}

// frameDelta returns the current tick length, defaulting to one fixed tick.
func frameDelta(w *ecs.World) float64 {
	if ft, ok := gameStateComponent(w, component.FrameTimeComponent.Kind()); ok && ft.Delta > 0 {
		return ft.Delta
	}
	return 1.0 / common.TicksPerSecond
}

// ownedBy returns the live entities owned by the given session.
func ownedBy(w *ecs.World, mode component.Mode) []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(w, component.SessionOwnerComponent.Kind(), func(e ecs.Entity, o *component.SessionOwner) {
		if o.Mode == mode {
			out = append(out, e)
		}
	})
	return out
}

// sessionCamera returns the first camera owned by mode.
func sessionCamera(w *ecs.World, mode component.Mode) (ecs.Entity, *component.Camera, *component.Transform, bool) {
	for _, e := range w.Query(component.CameraComponent.Kind(), component.TransformComponent.Kind(), component.SessionOwnerComponent.Kind()) {
		owner, _ := ecs.Get(w, e, component.SessionOwnerComponent.Kind())
		if owner.Mode != mode {
			continue
		}
		cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		return e, cam, tr, true
	}
	return 0, nil, nil, false
}
