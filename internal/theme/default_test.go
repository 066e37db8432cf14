package theme

import (
	"testing"

	"git.lost.host/meutraa/bsview/internal/game"
)

func TestRender(t *testing.T) {
	th := &DefaultTheme{}
	tests := []struct {
		object   game.Object
		expected string
	}{
		{game.NewNote(1, game.Note{Color: game.ColorLeft, Direction: game.DirectionDown}), "\033[38;2;236;30;0m▼\033[0m"},
		{game.NewNote(1, game.Note{Color: game.ColorRight, Direction: game.DirectionAny}), "\033[38;2;0;118;236m⬤\033[0m"},
		{game.NewBomb(1, game.Bomb{}), "\033[38;2;106;106;106m⨯\033[0m"},
		{game.NewObstacle(1, 2, game.Obstacle{}), "\033[38;2;0;236;128m▒\033[0m"},
	}
	for _, test := range tests {
		if out := th.Render(&test.object); out != test.expected {
			t.Logf("object   %+v", test.object)
			t.Logf("out      %q", out)
			t.Logf("expected %q", test.expected)
			t.Fail()
		}
	}
}
