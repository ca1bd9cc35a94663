package component

// EditorSelection is the block kind to place next and whether placement is
// currently suppressed because the pointer is over a selector button.
// Frozen holds exactly while Hovered is non-empty.
type EditorSelection struct {
	Selected int
	Frozen   bool
	Dirty    bool
	Hovered  map[int]struct{}
}

var EditorSelectionComponent = NewComponent[EditorSelection]()

// UINode is the root of a UI subtree. Children reference it through Parent.
type UINode struct {
	Name string
}

var UINodeComponent = NewComponent[UINode]()

// BlockButton is a selector button choosing a catalog block id.
type BlockButton struct {
	BlockID int
	Label   string
}

var BlockButtonComponent = NewComponent[BlockButton]()

// Parent links a child entity to its parent (ecs.Entity stored as uint64).
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()
