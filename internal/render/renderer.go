package render

import (
	"time"

	"git.lost.host/meutraa/bsview/internal/playback"
)

type Renderer interface {
	playback.Listener

	Init() error
	Deinit() error
	Draw(entries []playback.Entry, places []playback.Placement)
	Status(label string, progress float64)
	RenderLoop(delay, period time.Duration, render func(dt time.Duration) bool)
}
