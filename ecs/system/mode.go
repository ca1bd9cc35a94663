package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/ecs/entity"
	"github.com/milk9111/blockdash/levels"
	"github.com/milk9111/blockdash/logging"
)

// RequestMode asks for a mode change; the ModeSystem applies it on its next
// run. It reports false when no game state exists.
func RequestMode(w *ecs.World, mode component.Mode) bool {
	ms, ok := modeState(w)
	if !ok {
		return false
	}
	ms.Desired = mode
	return true
}

// RequestReload asks the ModeSystem to rebuild the live Level session.
func RequestReload(w *ecs.World) bool {
	ms, ok := modeState(w)
	if !ok {
		return false
	}
	ms.ReloadRequested = true
	return true
}

// ModeSystem owns the Editor and Level sessions. Its open and close
// handlers are the only code that flips the active flags.
type ModeSystem struct {
	res *Resources
	log *logrus.Entry
}

func NewModeSystem(res *Resources) *ModeSystem {
	return &ModeSystem{res: res, log: logging.System("mode")}
}

func (s *ModeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	if in, ok := inputState(w); ok {
		if in.RequestLevel {
			RequestMode(w, component.ModeLevel)
		}
		if in.RequestEditor {
			RequestMode(w, component.ModeEditor)
		}
	}

	ms, ok := modeState(w)
	if !ok {
		return
	}

	if ms.ReloadRequested {
		ms.ReloadRequested = false
		if ms.LevelActive && ms.Desired == component.ModeLevel {
			s.log.Info("reloading level")
			s.closeLevel(w, ms)
		}
	}

	switch ms.Desired {
	case component.ModeLevel:
		if !ms.LevelActive {
			s.enterLevel(w, ms)
		}
	case component.ModeEditor:
		if !ms.EditorActive {
			s.closeLevel(w, ms)
			s.openEditor(w, ms)
		}
	}
}

// enterLevel loads the descriptor before touching any entity so a bad file
// leaves the Editor session untouched.
func (s *ModeSystem) enterLevel(w *ecs.World, ms *component.ModeState) {
	if ms.EditorActive && s.res.Editor != nil && s.res.Editor.Autosave {
		if sel, ok := editorSelection(w); ok && sel.Dirty {
			if err := saveEditorLayout(w, s.res.Store); err != nil {
				s.log.WithError(err).Warn("autosave failed")
			} else {
				sel.Dirty = false
			}
		}
	}

	d, err := s.res.Store.Load()
	if err != nil {
		s.fallBackToEditor(w, ms, err)
		return
	}

	s.closeEditor(w, ms)
	if err := s.openLevel(w, ms, d); err != nil {
		s.fallBackToEditor(w, ms, err)
	}
}

func (s *ModeSystem) fallBackToEditor(w *ecs.World, ms *component.ModeState, err error) {
	s.log.WithError(err).WithField("level", s.res.Store.Name()).Error("level transition failed")
	ms.Desired = component.ModeEditor
	s.openEditor(w, ms)
}

func (s *ModeSystem) openLevel(w *ecs.World, ms *component.ModeState, d levels.Descriptor) error {
	if ms.LevelActive {
		return nil
	}

	if _, err := entity.SpawnLevel(w, d, s.res.Catalog, component.ModeLevel); err != nil {
		return err
	}
	player, err := entity.NewPlayer(w, s.res.Player)
	if err != nil {
		despawnSession(w, component.ModeLevel)
		return err
	}
	ox, oy := 0.0, 0.0
	if s.res.Camera != nil {
		ox, oy = s.res.Camera.LevelOffset.X, s.res.Camera.LevelOffset.Y
	}
	start, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	cam, err := entity.NewCamera(w, component.ModeLevel, start.X+ox, start.Y+oy, s.cameraScale())
	if err != nil {
		despawnSession(w, component.ModeLevel)
		return err
	}
	if c, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok {
		c.LastTargetX = start.X
		c.HasTarget = true
	}

	if ac, ok := attemptCounter(w); ok {
		ac.Attempts = 0
	}
	ms.LevelActive = true
	s.log.WithField("blocks", len(d)).Info("level opened")
	return nil
}

func (s *ModeSystem) closeLevel(w *ecs.World, ms *component.ModeState) {
	if !ms.LevelActive {
		return
	}
	n := despawnSession(w, component.ModeLevel)
	ms.LevelActive = false
	s.log.WithField("despawned", n).Info("level closed")
}

func (s *ModeSystem) openEditor(w *ecs.World, ms *component.ModeState) {
	if ms.EditorActive {
		return
	}

	x, y := 0.0, 0.0
	if s.res.Camera != nil {
		x, y = s.res.Camera.EditorStart.X, s.res.Camera.EditorStart.Y
	}
	if _, err := entity.NewCamera(w, component.ModeEditor, x, y, s.cameraScale()); err != nil {
		s.log.WithError(err).Error("spawn editor camera")
	}
	if _, err := entity.NewBlockSelector(w, s.res.Catalog); err != nil {
		s.log.WithError(err).Error("spawn block selector")
	}

	if s.res.Editor != nil && s.res.Editor.LoadLevel {
		if d, err := s.res.Store.Load(); err != nil {
			s.log.WithError(err).WithField("level", s.res.Store.Name()).Warn("editor starts empty")
		} else if _, err := entity.SpawnLevel(w, d, s.res.Catalog, component.ModeEditor); err != nil {
			s.log.WithError(err).Warn("editor starts empty")
		}
	}

	ClearHover(w)
	if sel, ok := editorSelection(w); ok {
		sel.Dirty = false
	}
	ms.EditorActive = true
	s.log.Info("editor opened")
}

func (s *ModeSystem) closeEditor(w *ecs.World, ms *component.ModeState) {
	if !ms.EditorActive {
		return
	}
	n := despawnSession(w, component.ModeEditor)
	ms.EditorActive = false
	s.log.WithField("despawned", n).Info("editor closed")
}

func (s *ModeSystem) cameraScale() float64 {
	if s.res.Camera != nil && s.res.Camera.Scale > 0 {
		return s.res.Camera.Scale
	}
	return 1
}

// despawnSession destroys every entity owned by mode, with its subtree.
func despawnSession(w *ecs.World, mode component.Mode) int {
	n := 0
	for _, e := range ownedBy(w, mode) {
		n += ecs.DestroyRecursive(w, e)
	}
	return n
}
