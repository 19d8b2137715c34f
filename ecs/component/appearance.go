package component

import "image/color"

// Appearance carries what a renderer needs to draw an entity. The core never
// reads it.
type Appearance struct {
	Color  color.Color
	Radius float64
	// Glyph is used by the terminal frontend.
	Glyph rune
}

var AppearanceComponent = NewComponent[Appearance]()
