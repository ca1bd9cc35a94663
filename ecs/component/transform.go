package component

// Transform positions an entity in y-up world space. X and Y are the centre
// of the entity; Rotation is in radians, counter-clockwise positive.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
