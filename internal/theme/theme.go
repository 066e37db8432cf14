package theme

import "git.lost.host/meutraa/bsview/internal/game"

type RGB struct {
	R, G, B uint8
}

type Theme interface {
	// Render returns the escaped, coloured glyph of an object
	Render(o *game.Object) string
	RenderHitField(lane int) string
}
