package playback

import (
	"errors"
	"fmt"
	"math"

	"git.lost.host/meutraa/bsview/internal/game"
)

var ErrInvalidDespawnOffset = errors.New("despawn offset must be a finite number of beats >= 0")

// Entry is an object in the active window.
type Entry struct {
	Index   int // Position in the store
	Object  *game.Object
	EndBeat float64
}

// Listener is told when objects enter and leave the active window, so the
// host can create and destroy their visuals.
type Listener interface {
	Spawn(e Entry, at Placement)
	Despawn(e Entry)
}

type Config struct {
	DespawnOffset float64 // Beats an object lingers past its end beat
	Scale         float64 // Projector scale, DefaultScale when 0
	Listener      Listener
}

// Scheduler keeps the set of objects in flight for one playback session.
// It is not safe for concurrent use.
type Scheduler struct {
	store     *game.Store
	tempo     game.Tempo
	projector Projector
	listener  Listener

	hjd, njd      float64
	despawnOffset float64

	currentBeat    float64
	spawnHorizon   float64
	active         []Entry // Ascending by EndBeat
	nextSpawnIndex int
	paused         bool
}

// New builds a paused scheduler positioned at beat 0. Invalid tempo or jump
// parameters prevent construction.
func New(store *game.Store, params game.TimingParameters, cfg Config) (*Scheduler, error) {
	hjd, err := game.HalfJumpDuration(params)
	if nil != err {
		return nil, fmt.Errorf("unable to compute half jump duration: %w", err)
	}
	njd, err := game.JumpDistance(params, hjd)
	if nil != err {
		return nil, fmt.Errorf("unable to compute jump distance: %w", err)
	}
	if math.IsNaN(cfg.DespawnOffset) || math.IsInf(cfg.DespawnOffset, 0) || cfg.DespawnOffset < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDespawnOffset, cfg.DespawnOffset)
	}
	scale := cfg.Scale
	if scale == 0 {
		scale = DefaultScale
	}

	tempo := game.Tempo{BPM: params.BPM}
	s := &Scheduler{
		store: store,
		tempo: tempo,
		projector: Projector{
			Tempo:     tempo,
			JumpSpeed: params.JumpSpeed,
			Scale:     scale,
		},
		listener:      cfg.Listener,
		hjd:           hjd,
		njd:           njd,
		despawnOffset: cfg.DespawnOffset,
		paused:        true,
	}
	s.spawnHorizon = s.currentBeat + s.hjd
	s.spawn()
	return s, nil
}

// Advance moves playback forward by seconds of wall clock time. It does
// nothing while paused. A negative step is treated as a seek.
func (s *Scheduler) Advance(seconds float64) error {
	delta, err := s.tempo.TimeToBeat(seconds)
	if nil != err {
		return err
	}
	if s.paused {
		return nil
	}
	beat := s.currentBeat + delta
	if math.IsInf(beat, 0) {
		return game.ErrInvalidTimeValue
	}
	if delta < 0 {
		return s.Seek(beat)
	}

	s.currentBeat = beat
	s.spawnHorizon = s.currentBeat + s.hjd
	s.despawn()
	s.spawn()
	return nil
}

// Seek rebuilds the active window at an absolute beat.
func (s *Scheduler) Seek(beat float64) error {
	if math.IsNaN(beat) || math.IsInf(beat, 0) {
		return game.ErrInvalidTimeValue
	}
	s.Clear()

	s.currentBeat = beat
	s.spawnHorizon = s.currentBeat + s.hjd

	// The store is sorted by beat, not end beat, so a long obstacle can
	// still be running after later objects ended. Scan linearly.
	i := 0
	for i < s.store.Len() && s.elapsed(s.store.At(i).EndBeat()) {
		i++
	}
	s.nextSpawnIndex = i
	s.spawn()
	return nil
}

// Clear empties the active window, leaving the cursor and spawn index alone.
func (s *Scheduler) Clear() {
	for _, e := range s.active {
		s.notifyDespawn(e)
	}
	s.active = s.active[:0]
}

func (s *Scheduler) elapsed(endBeat float64) bool {
	return endBeat+s.despawnOffset < s.currentBeat
}

func (s *Scheduler) despawn() {
	n := 0
	for n < len(s.active) && s.elapsed(s.active[n].EndBeat) {
		s.notifyDespawn(s.active[n])
		n++
	}
	if n > 0 {
		s.active = append(s.active[:0], s.active[n:]...)
	}
}

func (s *Scheduler) spawn() {
	for s.nextSpawnIndex < s.store.Len() {
		o := s.store.At(s.nextSpawnIndex)
		if o.Beat >= s.spawnHorizon {
			break
		}
		e := Entry{Index: s.nextSpawnIndex, Object: o, EndBeat: o.EndBeat()}
		s.nextSpawnIndex++

		// Already over, it would only be despawned on the next tick
		if s.elapsed(e.EndBeat) {
			continue
		}

		pos := len(s.active)
		for pos > 0 && e.EndBeat < s.active[pos-1].EndBeat {
			pos--
		}
		s.active = append(s.active, Entry{})
		copy(s.active[pos+1:], s.active[pos:])
		s.active[pos] = e

		if nil != s.listener {
			s.listener.Spawn(e, s.projector.Place(o, s.currentBeat))
		}
	}
}

func (s *Scheduler) notifyDespawn(e Entry) {
	if nil != s.listener {
		s.listener.Despawn(e)
	}
}

// Placements appends the current placement of every active entry to buf,
// in window order.
func (s *Scheduler) Placements(buf []Placement) []Placement {
	for _, e := range s.active {
		buf = append(buf, s.projector.Place(e.Object, s.currentBeat))
	}
	return buf
}

// Active returns a copy of the active window, ascending by end beat.
func (s *Scheduler) Active() []Entry {
	out := make([]Entry, len(s.active))
	copy(out, s.active)
	return out
}

func (s *Scheduler) Len() int                  { return len(s.active) }
func (s *Scheduler) CurrentBeat() float64      { return s.currentBeat }
func (s *Scheduler) SpawnHorizon() float64     { return s.spawnHorizon }
func (s *Scheduler) HalfJumpDuration() float64 { return s.hjd }
func (s *Scheduler) JumpDistance() float64     { return s.njd }
func (s *Scheduler) NextSpawnIndex() int       { return s.nextSpawnIndex }
func (s *Scheduler) Tempo() game.Tempo         { return s.tempo }
func (s *Scheduler) Projector() Projector      { return s.projector }

// CurrentTime is the playback position in seconds from the first beat.
func (s *Scheduler) CurrentTime() float64 {
	return s.currentBeat * s.tempo.SecondsPerBeat()
}

func (s *Scheduler) Paused() bool { return s.paused }
func (s *Scheduler) Play()        { s.paused = false }
func (s *Scheduler) Pause()       { s.paused = true }

// TogglePause flips the paused flag and reports the new state.
func (s *Scheduler) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}
