package component

// ScrollUnit tells how a wheel delta is measured.
type ScrollUnit int

const (
	ScrollLine ScrollUnit = iota
	ScrollPixel
)

// Input stores the per-tick input snapshot.
type Input struct {
	Jump        bool
	JumpPressed bool

	PanX float64
	PanY float64

	ScrollY    float64
	ScrollUnit ScrollUnit

	PointerX       float64
	PointerY       float64
	PointerPressed bool
	ErasePressed   bool

	SavePressed bool
	CopyPressed bool

	RequestLevel  bool
	RequestEditor bool
}

var InputComponent = NewComponent[Input]()

// FrameTime is the elapsed time of the current tick in seconds.
type FrameTime struct {
	Delta float64
}

var FrameTimeComponent = NewComponent[FrameTime]()
