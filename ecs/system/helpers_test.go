package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/ecs/entity"
	"github.com/milk9111/blockdash/levels"
	"github.com/milk9111/blockdash/prefabs"
)

const threeRecordLevel = `[
  {"block_id": 1, "name": "G1", "purpose": 1, "position": [0, -320]},
  {"block_id": 0, "name": "S1", "purpose": 0, "position": [64, -320]},
  {"block_id": 2, "name": "C1", "purpose": 2, "position": [128, -320]}
]`

func testResources(t *testing.T, levelJSON string) *Resources {
	t.Helper()
	catalog := &prefabs.BlockCatalog{
		VisualSize:  32,
		VisualScale: 2,
		Blocks: []prefabs.BlockSpec{
			{ID: 0, Name: "spike", Purpose: 0, Collider: prefabs.ColliderSpec{Width: 16, Height: 40}, Spike: true},
			{ID: 1, Name: "ground", Purpose: 1, Collider: prefabs.ColliderSpec{Width: 64, Height: 64}},
			{ID: 2, Name: "clipped", Purpose: 2, Collider: prefabs.ColliderSpec{Width: 64, Height: 32}},
		},
	}
	path := filepath.Join(t.TempDir(), "level.json")
	if levelJSON != "" {
		require.NoError(t, os.WriteFile(path, []byte(levelJSON), 0o644))
	}
	return &Resources{
		Catalog: catalog,
		Player: &prefabs.PlayerSpec{
			RunSpeed:     300,
			JumpImpulse:  800,
			RotationRate: 225,
			KillY:        -1200,
			Start:        prefabs.PointSpec{X: -320, Y: -220},
			Collider:     prefabs.ColliderSpec{Width: 50, Height: 50},
		},
		Camera: &prefabs.CameraSpec{
			LevelOffset: prefabs.PointSpec{X: 320, Y: 220},
			Scale:       1,
			PanSpeed:    1000,
			ZoomSpeed:   10,
			MinScale:    0.1,
			MaxScale:    10,
		},
		Editor: &prefabs.EditorSpec{CellSize: 64},
		Store:  levels.Store{Path: path, Blocks: catalog},
	}
}

func newTestWorld(t *testing.T, start component.Mode) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	_, err := entity.NewGameState(w, start, 1)
	require.NoError(t, err)
	return w
}

func mustModeState(t *testing.T, w *ecs.World) *component.ModeState {
	t.Helper()
	ms, ok := modeState(w)
	require.True(t, ok)
	return ms
}

func mustInput(t *testing.T, w *ecs.World) *component.Input {
	t.Helper()
	in, ok := inputState(w)
	require.True(t, ok)
	return in
}

func countOwned(w *ecs.World, mode component.Mode) int {
	return len(ownedBy(w, mode))
}

func countWith(w *ecs.World, kind component.Kind) int {
	return len(w.Query(kind))
}

type fakeInput struct {
	next component.Input
}

func (f *fakeInput) Poll() component.Input { return f.next }

type fakeClipboard struct {
	data []byte
}

func (f *fakeClipboard) WriteText(data []byte) error {
	f.data = append([]byte(nil), data...)
	return nil
}
