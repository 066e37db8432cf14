package playback

import (
	"errors"
	"math"
	"testing"

	"git.lost.host/meutraa/bsview/internal/game"
)

type fakePlayer struct {
	playing bool
	at      float64
	err     error
}

func (p *fakePlayer) Play(at float64) error {
	if nil != p.err {
		return p.err
	}
	p.playing = true
	p.at = at
	return nil
}

func (p *fakePlayer) Stop() {
	p.playing = false
}

func newSession(t *testing.T, player Player) *Session {
	t.Helper()
	store := mustStore(t, game.NewNote(4, game.Note{}), game.NewNote(100, game.Note{}))
	s, err := New(store, game.TimingParameters{BPM: 120, JumpSpeed: 16}, Config{})
	if nil != err {
		t.Fatal(err)
	}
	// 60 seconds is 120 beats
	return NewSession(s, player, 0.25, 60)
}

func TestSessionPauseRestartsAudio(t *testing.T) {
	player := &fakePlayer{}
	session := newSession(t, player)

	if err := session.SeekTime(10); nil != err {
		t.Fatal(err)
	}
	if player.playing {
		t.Fatal("seeking while paused should not start audio")
	}
	if err := session.TogglePause(); nil != err {
		t.Fatal(err)
	}
	if !player.playing || player.at != 10.25 {
		t.Log("player", player.playing, player.at)
		t.Fail()
	}
	if err := session.Forward(5); nil != err {
		t.Fatal(err)
	}
	if !player.playing || player.at != 15.25 || session.Scheduler.CurrentBeat() != 30 {
		t.Log("after forward", player.playing, player.at, session.Scheduler.CurrentBeat())
		t.Fail()
	}
	if err := session.TogglePause(); nil != err {
		t.Fatal(err)
	}
	if player.playing {
		t.Log("pause should stop audio")
		t.Fail()
	}
}

func TestSessionClampsSeeks(t *testing.T) {
	session := newSession(t, nil)

	if err := session.Back(30); nil != err {
		t.Fatal(err)
	}
	if session.Scheduler.CurrentBeat() != 0 {
		t.Log("back past the start", session.Scheduler.CurrentBeat())
		t.Fail()
	}
	if err := session.SeekTime(600); nil != err {
		t.Fatal(err)
	}
	if math.Abs(session.Scheduler.CurrentBeat()-(120-endMargin)) > 1e-9 {
		t.Log("seek past the end", session.Scheduler.CurrentBeat())
		t.Fail()
	}
	if err := session.SeekBeat(math.NaN()); !errors.Is(err, game.ErrInvalidTimeValue) {
		t.Log("NaN seek", err)
		t.Fail()
	}
}

func TestSessionTickPausesAtEnd(t *testing.T) {
	player := &fakePlayer{}
	session := newSession(t, player)
	if err := session.SeekTime(59.5); nil != err {
		t.Fatal(err)
	}
	if err := session.TogglePause(); nil != err {
		t.Fatal(err)
	}
	if err := session.Tick(1); nil != err {
		t.Fatal(err)
	}
	if !session.Scheduler.Paused() || player.playing {
		t.Log("session should pause at the end", session.Scheduler.Paused(), player.playing)
		t.Fail()
	}
	if session.Progress() != 1 {
		t.Log("progress", session.Progress())
		t.Fail()
	}
}

func TestSessionAudioError(t *testing.T) {
	failure := errors.New("no device")
	session := newSession(t, &fakePlayer{err: failure})
	if err := session.TogglePause(); !errors.Is(err, failure) {
		t.Log("expected wrapped audio error, got", err)
		t.Fail()
	}
}

func TestStatus(t *testing.T) {
	session := newSession(t, nil)
	if err := session.SeekTime(65.9); nil != err {
		t.Fatal(err)
	}
	// Clamped to just before 1:00
	if s := session.Status(); s != "paused 0:59 / 1:00" {
		t.Log("status", s)
		t.Fail()
	}
	session.Scheduler.Play()
	if err := session.SeekTime(5); nil != err {
		t.Fatal(err)
	}
	if s := session.Status(); s != "0:05 / 1:00" {
		t.Log("status", s)
		t.Fail()
	}
}

var clockTests = map[float64]string{
	0:      "0:00",
	9.99:   "0:09",
	61:     "1:01",
	3599.5: "59:59",
	-3:     "0:00",
}

func TestFormatClock(t *testing.T) {
	for in, expected := range clockTests {
		if out := FormatClock(in); out != expected {
			t.Log("in", in, "out", out, "expected", expected)
			t.Fail()
		}
	}
}
