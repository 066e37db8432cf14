package game

import "fmt"

// Kind identifies the variant carried by an Object's payload.
type Kind uint8

const (
	KindNote Kind = iota
	KindBomb
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindBomb:
		return "bomb"
	case KindObstacle:
		return "obstacle"
	}
	return "unknown"
}

type Color uint8

const (
	ColorLeft Color = iota
	ColorRight
)

// Direction is the cut direction of a note, in map file order.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionUpLeft
	DirectionUpRight
	DirectionDownLeft
	DirectionDownRight
	DirectionAny
)

// Angle is the rotation of the note arrow in degrees around the travel axis.
func (d Direction) Angle() float64 {
	switch d {
	case DirectionDown:
		return 180
	case DirectionLeft:
		return 90
	case DirectionRight:
		return -90
	case DirectionUpLeft:
		return 45
	case DirectionUpRight:
		return -45
	case DirectionDownLeft:
		return 135
	case DirectionDownRight:
		return -135
	}
	return 0
}

// Payload is the variant specific part of an Object. The set of
// implementations is closed to this package.
type Payload interface {
	Kind() Kind
	payload()
}

type Note struct {
	X, Y        int // Grid cell, x 0-3 from the left, y 0-2 from the bottom
	Color       Color
	Direction   Direction
	AngleOffset float64
}

func (Note) Kind() Kind { return KindNote }
func (Note) payload()   {}

type Bomb struct {
	X, Y int
}

func (Bomb) Kind() Kind { return KindBomb }
func (Bomb) payload()   {}

type Obstacle struct {
	X, Y          int
	Width, Height int
}

func (Obstacle) Kind() Kind { return KindObstacle }
func (Obstacle) payload()   {}

// Object is a single gameplay object positioned on the beat axis.
type Object struct {
	Beat     float64 // The beat the object should be hit
	Duration float64 // Beats the object stays active, 0 unless an obstacle
	Payload  Payload
}

func NewNote(beat float64, n Note) Object {
	return Object{Beat: beat, Payload: n}
}

func NewBomb(beat float64, b Bomb) Object {
	return Object{Beat: beat, Payload: b}
}

func NewObstacle(beat, duration float64, o Obstacle) Object {
	return Object{Beat: beat, Duration: duration, Payload: o}
}

func (o *Object) Kind() Kind {
	return o.Payload.Kind()
}

// EndBeat is the beat after which the object can be removed from view.
func (o *Object) EndBeat() float64 {
	return o.Beat + o.Duration
}

func (o *Object) validate() error {
	if nil == o.Payload {
		return fmt.Errorf("%w: missing payload at beat %v", ErrInvalidObject, o.Beat)
	}
	if !finite(o.Beat) || !finite(o.Duration) {
		return fmt.Errorf("%w: %v at beat %v has a non-finite position", ErrInvalidObject, o.Kind(), o.Beat)
	}
	if o.Duration < 0 {
		return fmt.Errorf("%w: %v at beat %v has negative duration %v", ErrInvalidObject, o.Kind(), o.Beat, o.Duration)
	}
	if o.Kind() != KindObstacle && o.Duration != 0 {
		return fmt.Errorf("%w: %v at beat %v cannot have a duration", ErrInvalidObject, o.Kind(), o.Beat)
	}
	return nil
}
