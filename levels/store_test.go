package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadsEmbeddedDefault(t *testing.T) {
	d, err := Store{Blocks: known}.Load()
	require.NoError(t, err)
	require.NotEmpty(t, d)

	grounds := 0
	for _, r := range d {
		if r.Purpose == PurposeGround && r.Position[1] == -320 {
			grounds++
		}
	}
	assert.Greater(t, grounds, 10)
}

func TestStoreFallbackUntilSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	s := Store{Path: path, Blocks: known, Fallback: true}

	d, err := s.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, d)

	mine := Descriptor{{BlockID: 1, Name: "ground", Purpose: PurposeGround, Position: [2]int{0, 0}}}
	require.NoError(t, s.Save(mine))
	d, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, mine, d)
}

func TestStoreSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "level.json")
	s := Store{Path: path, Blocks: known}

	d := Descriptor{{BlockID: 2, Name: "clipped", Purpose: PurposeClipped, Position: [2]int{64, 0}}}
	require.NoError(t, s.Save(d))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, d, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestStoreErrors(t *testing.T) {
	assert.ErrorIs(t, Store{}.Save(nil), ErrNoPath)

	_, err := Store{Path: filepath.Join(t.TempDir(), "missing.json")}.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"block_id": 9, "name": "x", "purpose": 1, "position": [0, 0]}]`), 0o644))
	_, err = Store{Path: path, Blocks: known}.Load()
	assert.ErrorIs(t, err, ErrUnknownBlock)

	s := Store{Path: path, Blocks: known}
	assert.ErrorIs(t, s.Save(Descriptor{{BlockID: 1, Purpose: 5}}), ErrMalformed)
}

func TestMatchLevelOrSpec(t *testing.T) {
	m := MatchLevelOrSpec("levels/my.json")
	assert.True(t, m("levels/my.json"))
	assert.True(t, m("prefabs/player.yaml"))
	assert.False(t, m("levels/other.json"))
	assert.False(t, m("levels/.level-123.json"))

	none := MatchLevelOrSpec("")
	assert.False(t, none("levels/my.json"))
}
