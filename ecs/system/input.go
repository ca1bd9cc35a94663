package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
)

// InputSource produces one input snapshot per tick.
type InputSource interface {
	Poll() component.Input
}

// InputSystem copies the source's snapshot onto every Input component.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = EbitenInput{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	snapshot := i.source.Poll()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = snapshot
	})
}

// EbitenInput reads the keyboard, mouse and first gamepad.
type EbitenInput struct{}

func (EbitenInput) Poll() component.Input {
	var in component.Input

	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)

	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.PanX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.PanX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.PanY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.PanY -= 1
	}

	// Ebiten reports wheel deltas in lines.
	_, in.ScrollY = ebiten.Wheel()
	in.ScrollUnit = component.ScrollLine

	cx, cy := ebiten.CursorPosition()
	in.PointerX, in.PointerY = float64(cx), float64(cy)
	in.PointerPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.ErasePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl {
		in.SavePressed = inpututil.IsKeyJustPressed(ebiten.KeyS)
		in.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
		// Ctrl+S must not pan the camera.
		in.PanX, in.PanY = 0, 0
	}

	in.RequestLevel = inpututil.IsKeyJustPressed(ebiten.Key1)
	in.RequestEditor = inpututil.IsKeyJustPressed(ebiten.Key2)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	return in
}
