package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/blockdash/ecs"
)

const (
	hudPaddingX  = 16.0
	hudPaddingY  = 12.0
	hudFontSize  = 22.0
	editorHelpY  = 64.0
	editorHelpSz = 16.0
)

// HUDSystem keeps the attempts label current and draws it during a Level
// session. In the Editor it draws the key help line instead.
type HUDSystem struct {
	face     text.Face
	helpFace text.Face
}

func NewHUDSystem() (*HUDSystem, error) {
	face, err := uiFace(hudFontSize)
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	helpFace, err := uiFace(editorHelpSz)
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	return &HUDSystem{face: face, helpFace: helpFace}, nil
}

func (s *HUDSystem) Update(w *ecs.World) {
	if ac, ok := attemptCounter(w); ok {
		ac.RenderedText = AttemptsLabel(ac.Attempts)
	}
}

func AttemptsLabel(attempts int) string {
	return fmt.Sprintf("Attempts: %d", attempts)
}

func (s *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if s == nil || w == nil {
		return
	}
	ms, ok := modeState(w)
	if !ok {
		return
	}

	if ms.LevelActive {
		if ac, ok := attemptCounter(w); ok && ac.RenderedText != "" {
			op := &text.DrawOptions{}
			op.GeoM.Translate(hudPaddingX, hudPaddingY)
			op.ColorScale.ScaleWithColor(color.White)
			text.Draw(screen, ac.RenderedText, s.face, op)
		}
		return
	}

	if ms.EditorActive {
		help := "LMB place  RMB erase  WASD pan  wheel zoom  Ctrl+S save  Ctrl+C copy  1 play"
		if sel, ok := editorSelection(w); ok && sel.Dirty {
			help += "  (unsaved)"
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudPaddingX, editorHelpY)
		op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff})
		text.Draw(screen, help, s.helpFace, op)
	}
}
