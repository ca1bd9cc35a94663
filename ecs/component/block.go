package component

import "fmt"

// BlockKind is the gameplay purpose of a placed tile. The numeric values are
// the purpose tags used by level descriptor files.
type BlockKind int

const (
	BlockHazard BlockKind = iota
	BlockGround
	BlockClipped
)

func (k BlockKind) Valid() bool {
	return k >= BlockHazard && k <= BlockClipped
}

func (k BlockKind) String() string {
	switch k {
	case BlockHazard:
		return "hazard"
	case BlockGround:
		return "ground"
	case BlockClipped:
		return "clipped"
	default:
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
}

// Block is a grid tile. ID selects the catalog entry (visuals and collider),
// Kind decides how the collision classifier treats contacts with it. Order
// is the placement sequence used when a layout is written back out.
type Block struct {
	ID    int
	Name  string
	Kind  BlockKind
	Order int
}

var BlockComponent = NewComponent[Block]()
