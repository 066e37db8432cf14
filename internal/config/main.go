package config

import (
	"time"

	"git.lost.host/meutraa/bsview/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	Directory      string
	Characteristic string
	Difficulty     game.Rank
	DespawnOffset  float64 // Beats
	Scale          float64
	Delay          time.Duration // Before playback starts
	FramePeriod    time.Duration
	Step           time.Duration // Arrow key seek
	FineStep       time.Duration // Comma and period seek
	Database       string
	Log            string
	Resume         bool
}

// Parse reads the command line, args excluding the program name.
func Parse(args []string) (*Config, error) {
	app := kingpin.New("bsview", "Beat map playback viewer")
	app.Version(Version)

	var (
		directory      = app.Arg("directory", "Map directory containing Info.dat").Required().ExistingDir()
		characteristic = app.Flag("characteristic", "Beatmap characteristic").Default(game.CharacteristicStandard).Short('c').String()
		difficulty     = app.Flag("difficulty", "Difficulty to play").Default("ExpertPlus").Short('D').String()
		despawnOffset  = app.Flag("despawn-offset", "Beats an object stays visible after it ends").Default("0").Float64()
		scale          = app.Flag("scale", "Distance units per second of note travel").Default("4").Short('s').Float64()
		delay          = app.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
		framePeriod    = app.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
		step           = app.Flag("step", "Seek step of the arrow keys").Default("5s").Duration()
		fineStep       = app.Flag("fine-step", "Seek step of the comma and period keys").Default("100ms").Duration()
		database       = app.Flag("database", "Bookmark database").Default("./bookmarks.db").String()
		logFile        = app.Flag("log", "Write logs to this file instead of stderr").String()
		resume         = app.Flag("resume", "Start from the last saved position").Default("true").Bool()
	)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}

	rank, err := game.ParseRank(*difficulty)
	if nil != err {
		return nil, err
	}

	return &Config{
		Directory:      *directory,
		Characteristic: *characteristic,
		Difficulty:     rank,
		DespawnOffset:  *despawnOffset,
		Scale:          *scale,
		Delay:          *delay,
		FramePeriod:    *framePeriod,
		Step:           *step,
		FineStep:       *fineStep,
		Database:       *database,
		Log:            *logFile,
		Resume:         *resume,
	}, nil
}
