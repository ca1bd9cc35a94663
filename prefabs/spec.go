package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidCatalog = errors.New("prefabs: invalid block catalog")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	Name         string       `yaml:"name"`
	RunSpeed     float64      `yaml:"run_speed"`
	JumpImpulse  float64      `yaml:"jump_impulse"`
	RotationRate float64      `yaml:"rotation_rate"`
	JumpOnHold   bool         `yaml:"jump_on_hold"`
	KillY        float64      `yaml:"kill_y"`
	Start        PointSpec    `yaml:"start"`
	Collider     ColliderSpec `yaml:"collider"`
	Radius       float64      `yaml:"radius"`
	Color        *YAMLColor   `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name        string    `yaml:"name"`
	LevelOffset PointSpec `yaml:"level_offset"`
	EditorStart PointSpec `yaml:"editor_start"`
	Scale       float64   `yaml:"scale"`
	PanSpeed    float64   `yaml:"pan_speed"`
	ZoomSpeed   float64   `yaml:"zoom_speed"`
	MinScale    float64   `yaml:"min_scale"`
	MaxScale    float64   `yaml:"max_scale"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EditorSpec struct {
	CellSize     float64 `yaml:"cell_size"`
	GridOffset   float64 `yaml:"grid_offset"`
	GridLines    int     `yaml:"grid_lines"`
	GridMaxScale float64 `yaml:"grid_max_scale"`
	LoadLevel    bool    `yaml:"load_level"`
	Autosave     bool    `yaml:"autosave"`
	SavePath     string  `yaml:"save_path"`
}

func LoadEditorSpec() (*EditorSpec, error) {
	spec, err := LoadSpec[EditorSpec]("editor.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// BlockSpec is one selectable block kind. Purpose uses the descriptor
// purpose tags: 0 hazard, 1 ground, 2 clipped.
type BlockSpec struct {
	ID       int          `yaml:"id"`
	Name     string       `yaml:"name"`
	Purpose  int          `yaml:"purpose"`
	Color    *YAMLColor   `yaml:"color"`
	Collider ColliderSpec `yaml:"collider"`
	Spike    bool         `yaml:"spike"`
}

type BlockCatalog struct {
	VisualSize  float64     `yaml:"visual_size"`
	VisualScale float64     `yaml:"visual_scale"`
	Blocks      []BlockSpec `yaml:"blocks"`
}

// Lookup returns the block registered for id.
func (c *BlockCatalog) Lookup(id int) (BlockSpec, bool) {
	if c == nil {
		return BlockSpec{}, false
	}
	for _, b := range c.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return BlockSpec{}, false
}

// Has reports whether id is registered.
func (c *BlockCatalog) Has(id int) bool {
	_, ok := c.Lookup(id)
	return ok
}

// Validate rejects duplicate ids, unknown purposes and empty colliders.
func (c *BlockCatalog) Validate() error {
	if c == nil || len(c.Blocks) == 0 {
		return fmt.Errorf("%w: no blocks", ErrInvalidCatalog)
	}
	seen := make(map[int]struct{}, len(c.Blocks))
	for _, b := range c.Blocks {
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidCatalog, b.ID)
		}
		seen[b.ID] = struct{}{}
		if b.Purpose < 0 || b.Purpose > 2 {
			return fmt.Errorf("%w: block %d has purpose %d", ErrInvalidCatalog, b.ID, b.Purpose)
		}
		if b.Collider.Width <= 0 || b.Collider.Height <= 0 {
			return fmt.Errorf("%w: block %d has an empty collider", ErrInvalidCatalog, b.ID)
		}
	}
	return nil
}

func LoadBlockCatalog() (*BlockCatalog, error) {
	spec, err := LoadSpec[BlockCatalog]("blocks.yaml")
	if err != nil {
		return nil, err
	}
	if spec.VisualScale <= 0 {
		spec.VisualScale = 1
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// NRGBA returns the colour or fallback when unset.
func (c *YAMLColor) NRGBA(fallback color.NRGBA) color.NRGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
