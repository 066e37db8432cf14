package parser

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/bsview/internal/game"
)

// defaultJumpSpeed is used when a difficulty does not set one
const defaultJumpSpeed = 20.0

var ErrUnsupportedVersion = errors.New("unsupported difficulty file version")

type DefaultParser struct{}

type info struct {
	Version         string  `json:"_version"`
	SongName        string  `json:"_songName"`
	SongSubName     string  `json:"_songSubName"`
	SongAuthorName  string  `json:"_songAuthorName"`
	LevelAuthorName string  `json:"_levelAuthorName"`
	SongFilename    string  `json:"_songFilename"`
	CoverImage      string  `json:"_coverImageFilename"`
	BPM             float64 `json:"_beatsPerMinute"`
	SongTimeOffset  float64 `json:"_songTimeOffset"`
	Shuffle         float64 `json:"_shuffle"`
	ShufflePeriod   float64 `json:"_shufflePeriod"`
	PreviewStart    float64 `json:"_previewStartTime"`
	PreviewDuration float64 `json:"_previewDuration"`
	Sets            []struct {
		Characteristic string `json:"_beatmapCharacteristicName"`
		Beatmaps       []struct {
			Difficulty string   `json:"_difficulty"`
			Rank       int      `json:"_difficultyRank"`
			Filename   string   `json:"_beatmapFilename"`
			JumpSpeed  *float64 `json:"_noteJumpMovementSpeed"`
			JumpOffset float64  `json:"_noteJumpStartBeatOffset"`
		} `json:"_difficultyBeatmaps"`
	} `json:"_difficultyBeatmapSets"`
}

func (p *DefaultParser) infoFile(dir string) (string, error) {
	for _, name := range []string{"Info.dat", "info.dat"} {
		file := filepath.Join(dir, name)
		if _, err := os.Stat(file); nil == err {
			return file, nil
		}
	}
	return "", fmt.Errorf("unable to find Info.dat in %v", dir)
}

func (p *DefaultParser) Parse(dir string) (*game.Song, error) {
	file, err := p.infoFile(dir)
	if nil != err {
		return nil, err
	}
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}

	var in info
	if err := json.Unmarshal(data, &in); nil != err {
		return nil, fmt.Errorf("unable to parse %v: %w", file, err)
	}
	if _, err := game.NewTempo(in.BPM); nil != err {
		return nil, fmt.Errorf("%v: %w", file, err)
	}

	song := &game.Song{
		Directory:       dir,
		Version:         in.Version,
		Name:            in.SongName,
		SubName:         in.SongSubName,
		Author:          in.SongAuthorName,
		Mapper:          in.LevelAuthorName,
		SongFile:        in.SongFilename,
		CoverImage:      in.CoverImage,
		BPM:             in.BPM,
		SongOffset:      in.SongTimeOffset,
		Shuffle:         in.Shuffle,
		ShufflePeriod:   in.ShufflePeriod,
		PreviewStart:    in.PreviewStart,
		PreviewDuration: in.PreviewDuration,
	}

	for _, set := range in.Sets {
		for _, bm := range set.Beatmaps {
			rank := game.Rank(bm.Rank)
			if r, err := game.ParseRank(bm.Difficulty); nil == err {
				rank = r
			}
			njs := defaultJumpSpeed
			if nil != bm.JumpSpeed {
				njs = *bm.JumpSpeed
			}
			song.Difficulties = append(song.Difficulties, game.Difficulty{
				Characteristic: set.Characteristic,
				Rank:           rank,
				Filename:       bm.Filename,
				JumpSpeed:      njs,
				JumpOffset:     bm.JumpOffset,
			})
		}
	}

	return song, nil
}

func (p *DefaultParser) hash(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (p *DefaultParser) Load(song *game.Song, difficulty game.Difficulty) (*game.Chart, error) {
	file := filepath.Join(song.Directory, difficulty.Filename)
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}

	objects, err := p.objects(data)
	if nil != err {
		return nil, fmt.Errorf("unable to parse %v: %w", file, err)
	}
	store, err := game.NewStore(objects)
	if nil != err {
		return nil, fmt.Errorf("%v: %w", file, err)
	}

	return &game.Chart{
		Song:       song,
		Difficulty: difficulty,
		Store:      store,
		Sum:        p.hash(data),
	}, nil
}

// objects picks the converter for the file format version
func (p *DefaultParser) objects(data []byte) ([]game.Object, error) {
	var version struct {
		Version       string          `json:"version"`
		LegacyVersion string          `json:"_version"`
		LegacyNotes   json.RawMessage `json:"_notes"`
	}
	if err := json.Unmarshal(data, &version); nil != err {
		return nil, err
	}

	switch {
	case strings.HasPrefix(version.Version, "3."):
		return convertV3(data)
	case strings.HasPrefix(version.LegacyVersion, "2."),
		version.Version == "" && version.LegacyVersion == "" && nil != version.LegacyNotes:
		return convertV2(data)
	}

	v := version.Version
	if v == "" {
		v = version.LegacyVersion
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, v)
}

func note(x, y, c, d int, angle float64) (game.Note, error) {
	if c != int(game.ColorLeft) && c != int(game.ColorRight) {
		return game.Note{}, fmt.Errorf("unknown note color %v", c)
	}
	dir := game.Direction(d)
	if d < 0 || dir > game.DirectionAny {
		dir = game.DirectionAny
	}
	return game.Note{
		X:           x,
		Y:           y,
		Color:       game.Color(c),
		Direction:   dir,
		AngleOffset: angle,
	}, nil
}
