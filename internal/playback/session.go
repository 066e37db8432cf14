package playback

import (
	"fmt"
	"math"
)

// endMargin keeps seeks strictly before the end of the song.
const endMargin = 0.01

// Player is the audio side of a session.
type Player interface {
	Play(at float64) error // Start playing at a position in seconds
	Stop()
}

// Session couples a scheduler to the song audio and implements the
// viewer's transport controls.
type Session struct {
	Scheduler *Scheduler
	Player    Player // Optional

	SongOffset float64 // Seconds of audio before beat 0
	Length     float64 // Song length in seconds, 0 when unknown
}

func NewSession(s *Scheduler, p Player, songOffset, length float64) *Session {
	return &Session{
		Scheduler:  s,
		Player:     p,
		SongOffset: songOffset,
		Length:     length,
	}
}

// Tick advances playback by one frame. Reaching the end of the song pauses.
func (s *Session) Tick(seconds float64) error {
	if err := s.Scheduler.Advance(seconds); nil != err {
		return err
	}
	if s.Length > 0 && !s.Scheduler.Paused() && s.Scheduler.CurrentTime() >= s.Length {
		s.Scheduler.Pause()
		s.stopAudio()
	}
	return nil
}

func (s *Session) clamp(beat float64) float64 {
	if s.Length > 0 {
		last := s.Length/s.Scheduler.Tempo().SecondsPerBeat() - endMargin
		if beat > last {
			beat = last
		}
	}
	if beat < 0 {
		beat = 0
	}
	return beat
}

// SeekBeat moves to a beat within the song and restarts the audio there
// when playing.
func (s *Session) SeekBeat(beat float64) error {
	if math.IsNaN(beat) || math.IsInf(beat, 0) {
		return s.Scheduler.Seek(beat)
	}
	if err := s.Scheduler.Seek(s.clamp(beat)); nil != err {
		return err
	}
	s.stopAudio()
	if !s.Scheduler.Paused() {
		return s.startAudio()
	}
	return nil
}

func (s *Session) SeekTime(seconds float64) error {
	beat, err := s.Scheduler.Tempo().TimeToBeat(seconds)
	if nil != err {
		return err
	}
	return s.SeekBeat(beat)
}

// Forward skips ahead by seconds.
func (s *Session) Forward(seconds float64) error {
	delta, err := s.Scheduler.Tempo().TimeToBeat(seconds)
	if nil != err {
		return err
	}
	return s.SeekBeat(s.Scheduler.CurrentBeat() + delta)
}

// Back skips back by seconds, stopping at the start of the song.
func (s *Session) Back(seconds float64) error {
	return s.Forward(-seconds)
}

func (s *Session) TogglePause() error {
	if s.Scheduler.TogglePause() {
		s.stopAudio()
		return nil
	}
	return s.startAudio()
}

func (s *Session) startAudio() error {
	if nil == s.Player {
		return nil
	}
	at := s.Scheduler.CurrentTime() + s.SongOffset
	if err := s.Player.Play(at); nil != err {
		return fmt.Errorf("unable to play audio at %.2fs: %w", at, err)
	}
	return nil
}

func (s *Session) stopAudio() {
	if nil != s.Player {
		s.Player.Stop()
	}
}

// Progress is the fraction of the song played, in [0, 1].
func (s *Session) Progress() float64 {
	if s.Length <= 0 {
		return 0
	}
	p := s.Scheduler.CurrentTime() / s.Length
	if p < 0 {
		return 0
	} else if p > 1 {
		return 1
	}
	return p
}

// Status is the scrub bar label, for example "paused 1:05 / 3:20".
func (s *Session) Status() string {
	prefix := ""
	if s.Scheduler.Paused() {
		prefix = "paused "
	}
	return prefix + FormatClock(s.Scheduler.CurrentTime()) + " / " + FormatClock(s.Length)
}

// FormatClock formats seconds as m:ss, truncating fractions.
func FormatClock(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
