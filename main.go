package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/bsview/internal/audio"
	"git.lost.host/meutraa/bsview/internal/bookmark"
	"git.lost.host/meutraa/bsview/internal/config"
	"git.lost.host/meutraa/bsview/internal/game"
	"git.lost.host/meutraa/bsview/internal/input"
	"git.lost.host/meutraa/bsview/internal/parser"
	"git.lost.host/meutraa/bsview/internal/playback"
	"git.lost.host/meutraa/bsview/internal/render"
	"github.com/eiannone/keyboard"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

// openAudio returns a nil player when the song cannot be played, so the map
// can still be viewed in silence.
func openAudio(song *game.Song, cfg *config.Config) (*audio.DefaultPlayer, float64) {
	player, err := audio.Open(filepath.Join(song.Directory, song.SongFile))
	if nil != err {
		log.Println("unable to open song, playing without audio:", err)
		return nil, 0
	}
	if err := player.Init(cfg.FramePeriod); nil != err {
		log.Println("unable to open audio device, playing without audio:", err)
		player.Close()
		return nil, 0
	}
	return player, player.Length()
}

func handle(session *playback.Session, cfg *config.Config, c input.Command) error {
	switch c {
	case input.Forward:
		return session.Forward(cfg.Step.Seconds())
	case input.Back:
		return session.Back(cfg.Step.Seconds())
	case input.FineForward:
		return session.Forward(cfg.FineStep.Seconds())
	case input.FineBack:
		return session.Back(cfg.FineStep.Seconds())
	case input.TogglePause:
		return session.TogglePause()
	}
	return nil
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}

	if cfg.Log != "" {
		f, err := os.OpenFile(cfg.Log, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if nil != err {
			return fmt.Errorf("unable to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	// Ensure our Default implementations are used as interfaces
	var psr parser.Parser = &parser.DefaultParser{}
	var bookmarks bookmark.Store = &bookmark.DefaultStore{}

	song, err := psr.Parse(cfg.Directory)
	if nil != err {
		return err
	}
	difficulty, err := song.Find(cfg.Characteristic, cfg.Difficulty)
	if nil != err {
		return err
	}
	chart, err := psr.Load(song, difficulty)
	if nil != err {
		return err
	}
	log.Printf("Opening %v (%v): %v notes, %v bombs, %v obstacles\n",
		song.Name, difficulty, chart.Store.NoteCount, chart.Store.BombCount, chart.Store.ObstacleCount)

	saving := true
	if err := bookmarks.Init(cfg.Database); nil != err {
		log.Println("bookmarks disabled:", err)
		saving = false
	}
	defer bookmarks.Deinit()

	var r render.Renderer
	tr, err := render.NewTerminalRenderer()
	if nil != err {
		return err
	}
	r = tr

	sched, err := playback.New(chart.Store, chart.Parameters(), playback.Config{
		DespawnOffset: cfg.DespawnOffset,
		Scale:         cfg.Scale,
		Listener:      r,
	})
	if nil != err {
		return fmt.Errorf("unable to start playback of %v: %w", difficulty, err)
	}
	tr.Depth = sched.JumpDistance() * cfg.Scale
	log.Printf("hjd %.3f beats, jump distance %.3f\n", sched.HalfJumpDuration(), sched.JumpDistance())

	var player playback.Player
	dp, length := openAudio(song, cfg)
	if nil != dp {
		defer dp.Close()
		player = dp
	} else {
		length = chart.Store.LastBeat()*sched.Tempo().SecondsPerBeat() + song.SongOffset
	}
	session := playback.NewSession(sched, player, song.SongOffset, length)

	if saving && cfg.Resume {
		beat, ok, err := bookmarks.Load(chart)
		if nil != err {
			log.Println(err)
		} else if ok {
			if err := session.SeekBeat(beat); nil != err {
				log.Println("unable to resume at beat", beat, err)
			}
		}
	}

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	if err := r.Init(); nil != err {
		return fmt.Errorf("unable to initialise terminal: %w", err)
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()

	started := false
	places := []playback.Placement{}
	r.RenderLoop(cfg.Delay, cfg.FramePeriod, func(dt time.Duration) bool {
		if !started {
			started = true
			dt = 0
			if err := session.TogglePause(); nil != err {
				log.Println(err)
			}
		}

		for _, c := range input.Drain(keyChannel) {
			if c == input.Quit {
				return false
			}
			if err := handle(session, cfg, c); nil != err {
				log.Println("unable to", c, err)
			}
		}

		if err := session.Tick(dt.Seconds()); nil != err {
			log.Println("playback stopped:", err)
			return false
		}

		places = sched.Placements(places[:0])
		r.Draw(sched.Active(), places)
		r.Status(fmt.Sprintf("%v  %v - %v  [%v active]",
			session.Status(), song.Name, difficulty, sched.Len()), session.Progress())
		return true
	})

	if saving {
		if err := bookmarks.Save(chart, sched.CurrentBeat()); nil != err {
			log.Println(err)
		}
	}
	return nil
}
