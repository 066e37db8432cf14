package playback

import "git.lost.host/meutraa/bsview/internal/game"

// DefaultScale maps seconds of travel at jump speed to axis units.
const DefaultScale = 4.0

// Projector places objects along the travel axis. The distance of an object
// is zero on its hit beat and positive while it is still approaching.
type Projector struct {
	Tempo     game.Tempo
	JumpSpeed float64
	Scale     float64
}

// Placement is where an object currently sits on the travel axis.
type Placement struct {
	Distance float64
	Extent   float64 // Length along the axis, 0 for notes and bombs
}

func (p Projector) Distance(o *game.Object, currentBeat float64) float64 {
	return (o.Beat - currentBeat) * p.Tempo.SecondsPerBeat() * p.JumpSpeed * p.Scale
}

func (p Projector) Extent(o *game.Object) float64 {
	return o.Duration * p.Tempo.SecondsPerBeat() * p.JumpSpeed * p.Scale
}

func (p Projector) Place(o *game.Object, currentBeat float64) Placement {
	return Placement{
		Distance: p.Distance(o, currentBeat),
		Extent:   p.Extent(o),
	}
}
