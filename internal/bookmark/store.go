package bookmark

import "git.lost.host/meutraa/bsview/internal/game"

// Store remembers where playback of a chart was left.
type Store interface {
	Init(path string) error
	Deinit()

	// Save the playback position of this chart
	Save(chart *game.Chart, beat float64) error

	// Load the last saved position, ok is false when there is none
	Load(chart *game.Chart) (beat float64, ok bool, err error)
}
