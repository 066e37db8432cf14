package theme

import (
	"fmt"

	"git.lost.host/meutraa/bsview/internal/game"
)

type DefaultTheme struct{}

const (
	bombSym     = "⨯"
	obstacleSym = "▒"
	barSym      = "-"
)

var (
	arrowSyms = map[game.Direction]string{
		game.DirectionUp:        "▲",
		game.DirectionDown:      "▼",
		game.DirectionLeft:      "◀",
		game.DirectionRight:     "▶",
		game.DirectionUpLeft:    "◤",
		game.DirectionUpRight:   "◥",
		game.DirectionDownLeft:  "◣",
		game.DirectionDownRight: "◢",
		game.DirectionAny:       "⬤",
	}
	noteColors = map[game.Color]RGB{
		game.ColorLeft:  {236, 30, 0},
		game.ColorRight: {0, 118, 236},
	}
	bombColor     = RGB{106, 106, 106}
	obstacleColor = RGB{0, 236, 128}
)

func colored(c RGB, sym string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sym)
}

func (t *DefaultTheme) Color(o *game.Object) RGB {
	switch p := o.Payload.(type) {
	case game.Note:
		if c, ok := noteColors[p.Color]; ok {
			return c
		}
	case game.Bomb:
		return bombColor
	case game.Obstacle:
		return obstacleColor
	}
	return RGB{255, 255, 255}
}

func (t *DefaultTheme) Symbol(o *game.Object) string {
	switch p := o.Payload.(type) {
	case game.Note:
		if sym, ok := arrowSyms[p.Direction]; ok {
			return sym
		}
		return arrowSyms[game.DirectionAny]
	case game.Bomb:
		return bombSym
	}
	return obstacleSym
}

func (t *DefaultTheme) Render(o *game.Object) string {
	return colored(t.Color(o), t.Symbol(o))
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSym
}
