package system

import (
	"cmp"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/blockdash/common"
	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/ecs/entity"
	"github.com/milk9111/blockdash/logging"
)

// PlacementSystem places and erases grid-snapped blocks in the Editor.
type PlacementSystem struct {
	res *Resources
	log *logrus.Entry
}

func NewPlacementSystem(res *Resources) *PlacementSystem {
	return &PlacementSystem{res: res, log: logging.System("placement")}
}

func (s *PlacementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ms, ok := modeState(w)
	if !ok || !ms.EditorActive {
		return
	}
	in, ok := inputState(w)
	if !ok || (!in.PointerPressed && !in.ErasePressed) {
		return
	}
	sel, ok := editorSelection(w)
	if !ok || sel.Frozen {
		return
	}

	x, y, ok := s.pointerCell(w, in)
	if !ok {
		return
	}

	if in.ErasePressed {
		if existing, found := editorBlockAt(w, x, y); found {
			w.DestroyEntity(existing)
			sel.Dirty = true
			s.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("block erased")
		}
		return
	}
	s.place(w, sel, x, y)
}

// pointerCell converts the pointer to the snapped world cell under it.
func (s *PlacementSystem) pointerCell(w *ecs.World, in *component.Input) (float64, float64, bool) {
	_, cam, camT, ok := sessionCamera(w, component.ModeEditor)
	if !ok {
		return 0, 0, false
	}
	wx, wy, ok := cam.ScreenToWorld(camT.X, camT.Y, in.PointerX, in.PointerY, common.BaseWidth, common.BaseHeight)
	if !ok {
		return 0, 0, false
	}
	cell, offset := common.BlockSize, 0.0
	if s.res != nil && s.res.Editor != nil {
		if s.res.Editor.CellSize > 0 {
			cell = s.res.Editor.CellSize
		}
		offset = s.res.Editor.GridOffset
	}
	x, y := common.SnapPoint(wx, wy, cell, offset)
	return x, y, true
}

func (s *PlacementSystem) place(w *ecs.World, sel *component.EditorSelection, x, y float64) {
	spec, ok := s.res.Catalog.Lookup(sel.Selected)
	if !ok {
		s.log.WithField("block_id", sel.Selected).Warn("selected block is not in the catalog")
		return
	}

	order := nextOrder(w)
	if existing, found := editorBlockAt(w, x, y); found {
		if b, ok := ecs.Get(w, existing, component.BlockComponent.Kind()); ok {
			order = b.Order
		}
		w.DestroyEntity(existing)
	}

	if _, err := entity.NewBlock(w, s.res.Catalog, entity.BlockParams{
		ID:    spec.ID,
		Kind:  component.BlockKind(spec.Purpose),
		X:     x,
		Y:     y,
		Owner: component.ModeEditor,
		Order: order,
	}); err != nil {
		s.log.WithError(err).Error("place block")
		return
	}
	sel.Dirty = true
	s.log.WithFields(logrus.Fields{"block_id": spec.ID, "x": x, "y": y}).Debug("block placed")
}

// editorBlocks returns the Editor's blocks in placement order.
func editorBlocks(w *ecs.World) []ecs.Entity {
	type placed struct {
		e     ecs.Entity
		order int
	}
	var items []placed
	ecs.ForEach2(w, component.BlockComponent.Kind(), component.SessionOwnerComponent.Kind(), func(e ecs.Entity, b *component.Block, o *component.SessionOwner) {
		if o.Mode == component.ModeEditor {
			items = append(items, placed{e: e, order: b.Order})
		}
	})
	slices.SortStableFunc(items, func(a, b placed) int { return cmp.Compare(a.order, b.order) })

	out := make([]ecs.Entity, len(items))
	for i, it := range items {
		out[i] = it.e
	}
	return out
}

func editorBlockAt(w *ecs.World, x, y float64) (ecs.Entity, bool) {
	for _, e := range editorBlocks(w) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if ok && t.X == x && t.Y == y {
			return e, true
		}
	}
	return 0, false
}

func nextOrder(w *ecs.World) int {
	blocks := editorBlocks(w)
	if len(blocks) == 0 {
		return 0
	}
	b, _ := ecs.Get(w, blocks[len(blocks)-1], component.BlockComponent.Kind())
	return b.Order + 1
}
