package game

import "fmt"

const (
	baseHalfJump    = 4.0
	maxJumpDistance = 18.0 // Furthest a note may travel in one half jump
	minHalfJump     = 0.25
)

// Tempo converts between beats and seconds at a fixed bpm.
type Tempo struct {
	BPM float64
}

func NewTempo(bpm float64) (Tempo, error) {
	t := Tempo{BPM: bpm}
	if err := t.validate(); nil != err {
		return Tempo{}, err
	}
	return t, nil
}

func (t Tempo) validate() error {
	if !finite(t.BPM) || t.BPM <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTempo, t.BPM)
	}
	return nil
}

func (t Tempo) SecondsPerBeat() float64 {
	return 60 / t.BPM
}

func (t Tempo) BeatToTime(beat float64) (float64, error) {
	if err := t.validate(); nil != err {
		return 0, err
	}
	if !finite(beat) {
		return 0, ErrInvalidTimeValue
	}
	return beat * 60 / t.BPM, nil
}

func (t Tempo) TimeToBeat(seconds float64) (float64, error) {
	if err := t.validate(); nil != err {
		return 0, err
	}
	if !finite(seconds) {
		return 0, ErrInvalidTimeValue
	}
	return seconds * t.BPM / 60, nil
}

// TimingParameters are the per difficulty values the scheduler needs.
type TimingParameters struct {
	BPM        float64
	JumpSpeed  float64 // Note jump movement speed
	JumpOffset float64 // Note jump start beat offset
}

func (p TimingParameters) Validate() error {
	if err := (Tempo{BPM: p.BPM}).validate(); nil != err {
		return err
	}
	if !finite(p.JumpSpeed) || !finite(p.JumpOffset) {
		return ErrInvalidTimeValue
	}
	if p.JumpSpeed <= 0 {
		return fmt.Errorf("%w: %v", ErrNonPositiveJumpSpeed, p.JumpSpeed)
	}
	return nil
}

// HalfJumpDuration is the number of beats before its hit beat that an
// object has to be visible. The base jump of 4 beats is halved until the
// distance travelled fits in the visible range, then shifted by the jump
// offset and floored at a quarter beat.
func HalfJumpDuration(p TimingParameters) (float64, error) {
	if err := p.Validate(); nil != err {
		return 0, err
	}

	halfJump := baseHalfJump
	secondsPerBeat := 60 / p.BPM
	for p.JumpSpeed*secondsPerBeat*halfJump > maxJumpDistance {
		halfJump /= 2
	}

	halfJump += p.JumpOffset
	if halfJump < minHalfJump {
		halfJump = minHalfJump
	}
	return halfJump, nil
}

// JumpDistance is the distance covered by an object during hjd beats.
func JumpDistance(p TimingParameters, hjd float64) (float64, error) {
	if err := p.Validate(); nil != err {
		return 0, err
	}
	if !finite(hjd) {
		return 0, ErrInvalidTimeValue
	}
	return p.JumpSpeed * hjd * 60 / p.BPM, nil
}
