package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/blockdash/common"
	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
)

const defaultGridMaxScale = 2.0

var gridColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}

// RenderSystem draws sprites as flat shapes through the first live camera
// and, for the Editor camera, the placement grid.
type RenderSystem struct {
	res      *Resources
	whiteImg *ebiten.Image
}

func NewRenderSystem(res *Resources) *RenderSystem {
	return &RenderSystem{res: res}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.whiteImg == nil {
		r.whiteImg = ebiten.NewImage(1, 1)
		r.whiteImg.Fill(color.White)
	}

	screen.Fill(colornames.Midnightblue)

	view := viewport{cam: &component.Camera{Scale: 1}}
	camEntity, hasCam := w.First(component.CameraComponent.Kind())
	if hasCam {
		view.cam, _ = ecs.Get(w, camEntity, component.CameraComponent.Kind())
		if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
			view.x, view.y = t.X, t.Y
		}
		if owner, ok := ecs.Get(w, camEntity, component.SessionOwnerComponent.Kind()); ok && owner.Mode == component.ModeEditor {
			r.drawGrid(screen, view)
		}
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		pi := ecs.Has(w, entities[i], component.PlayerTagComponent.Kind())
		pj := ecs.Has(w, entities[j], component.PlayerTagComponent.Kind())
		if pi != pj {
			return pj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		r.drawSprite(screen, view, t, s)
	}
}

type viewport struct {
	cam  *component.Camera
	x, y float64
}

func (v viewport) toScreen(wx, wy float64) (float32, float32) {
	sx, sy := v.cam.WorldToScreen(v.x, v.y, wx, wy, common.BaseWidth, common.BaseHeight)
	return float32(sx), float32(sy)
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, view viewport, t *component.Transform, s *component.Sprite) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	hw, hh := s.Width*sx/2, s.Height*sy/2

	var local [][2]float64
	if s.Spike {
		local = [][2]float64{{-hw, -hh}, {hw, -hh}, {0, hh}}
	} else {
		local = [][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	}

	sin, cos := math.Sincos(t.Rotation)
	vs := make([]ebiten.Vertex, len(local))
	for i, p := range local {
		wx := t.X + p[0]*cos - p[1]*sin
		wy := t.Y + p[0]*sin + p[1]*cos
		dx, dy := view.toScreen(wx, wy)
		vs[i] = ebiten.Vertex{
			DstX:   dx,
			DstY:   dy,
			ColorR: float32(s.Color.R) / 255,
			ColorG: float32(s.Color.G) / 255,
			ColorB: float32(s.Color.B) / 255,
			ColorA: float32(s.Color.A) / 255,
		}
	}

	indices := []uint16{0, 1, 2}
	if len(vs) == 4 {
		indices = append(indices, 0, 2, 3)
	}
	screen.DrawTriangles(vs, indices, r.whiteImg, &ebiten.DrawTrianglesOptions{})
}

// drawGrid strokes cell edges covering the viewport while zoomed in far
// enough for them to be readable.
func (r *RenderSystem) drawGrid(screen *ebiten.Image, view viewport) {
	cell, offset, maxScale := common.BlockSize, 0.0, defaultGridMaxScale
	if r.res != nil && r.res.Editor != nil {
		if r.res.Editor.CellSize > 0 {
			cell = r.res.Editor.CellSize
		}
		offset = r.res.Editor.GridOffset
		if r.res.Editor.GridMaxScale > 0 {
			maxScale = r.res.Editor.GridMaxScale
		}
	}
	scale := view.cam.EffectiveScale()
	if scale >= maxScale {
		return
	}

	halfW := common.BaseWidth / 2 * scale
	halfH := common.BaseHeight / 2 * scale
	edge := offset + cell/2

	first := math.Floor((view.x-halfW-edge)/cell)*cell + edge
	for x := first; x <= view.x+halfW; x += cell {
		x0, y0 := view.toScreen(x, view.y+halfH)
		x1, y1 := view.toScreen(x, view.y-halfH)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, false)
	}
	first = math.Floor((view.y-halfH-edge)/cell)*cell + edge
	for y := first; y <= view.y+halfH; y += cell {
		x0, y0 := view.toScreen(view.x-halfW, y)
		x1, y1 := view.toScreen(view.x+halfW, y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, false)
	}
}
