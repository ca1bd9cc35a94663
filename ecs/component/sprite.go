package component

import "image/color"

// Sprite is a flat-coloured rectangle of Width x Height world units before
// Transform scaling. Spike draws it as an upward triangle instead.
type Sprite struct {
	Color  color.NRGBA
	Width  float64
	Height float64
	Spike  bool
}

var SpriteComponent = NewComponent[Sprite]()
