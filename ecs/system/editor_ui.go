package system

import (
	"image/color"
	"sort"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/logging"
)

// HoverSelector records the pointer entering or leaving the selector button
// for block id. Placement stays frozen while any button is hovered, whatever
// order the enter and exit events of neighbouring buttons arrive in.
func HoverSelector(w *ecs.World, id int, hovered bool) {
	sel, ok := editorSelection(w)
	if !ok {
		return
	}
	if hovered {
		if sel.Hovered == nil {
			sel.Hovered = make(map[int]struct{})
		}
		sel.Hovered[id] = struct{}{}
	} else {
		delete(sel.Hovered, id)
	}
	sel.Frozen = len(sel.Hovered) > 0
}

// ClearHover forgets every hovered button and releases the freeze.
func ClearHover(w *ecs.World) {
	if sel, ok := editorSelection(w); ok {
		clear(sel.Hovered)
		sel.Frozen = false
	}
}

// SelectBlock makes id the kind placed by the next click.
func SelectBlock(w *ecs.World, id int) {
	if sel, ok := editorSelection(w); ok {
		sel.Selected = id
	}
}

// EditorUISystem mirrors the Editor's selector subtree into ebitenui
// buttons. The UI is rebuilt whenever the selector root entity changes.
type EditorUISystem struct {
	ui   *ebitenui.UI
	root ecs.Entity
	face text.Face
	log  *logrus.Entry
}

func NewEditorUISystem() (*EditorUISystem, error) {
	face, err := uiFace(18)
	if err != nil {
		return nil, err
	}
	return &EditorUISystem{face: face, log: logging.System("editor_ui")}, nil
}

func (s *EditorUISystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	root, ok := w.First(component.UINodeComponent.Kind())
	if !ok {
		if s.ui != nil {
			// The pointer may have been over a button when the subtree went away.
			ClearHover(w)
		}
		s.ui, s.root = nil, 0
		return
	}
	if s.ui == nil || root != s.root {
		s.build(w, root)
	}
	s.ui.Update()
}

func (s *EditorUISystem) Draw(screen *ebiten.Image) {
	if s == nil || s.ui == nil {
		return
	}
	s.ui.Draw(screen)
}

func (s *EditorUISystem) build(w *ecs.World, root ecs.Entity) {
	var buttons []*component.BlockButton
	for _, child := range ecs.Children(w, root) {
		if b, ok := ecs.Get(w, child, component.BlockButtonComponent.Kind()); ok {
			buttons = append(buttons, b)
		}
	}
	sort.Slice(buttons, func(i, j int) bool { return buttons[i].BlockID < buttons[j].BlockID })

	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}),
		Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}),
		Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}),
	}
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	face := s.face

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 160})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	for _, b := range buttons {
		id := b.BlockID
		bar.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(b.Label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 36)),
			widget.ButtonOpts.CursorEnteredHandler(func(args *widget.ButtonHoverEventArgs) {
				HoverSelector(w, id, true)
			}),
			widget.ButtonOpts.CursorExitedHandler(func(args *widget.ButtonHoverEventArgs) {
				HoverSelector(w, id, false)
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				SelectBlock(w, id)
				s.log.WithField("block_id", id).Debug("block selected")
			}),
		))
	}

	container := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	container.AddChild(bar)

	s.ui = &ebitenui.UI{Container: container}
	s.root = root
}
