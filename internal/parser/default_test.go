package parser

import (
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/bsview/internal/game"
	"git.lost.host/meutraa/bsview/internal/testdata"
)

func parseFixture(t *testing.T) (*DefaultParser, *game.Song) {
	t.Helper()
	dir := t.TempDir()
	if err := testdata.Write(dir); nil != err {
		t.Fatal(err)
	}
	p := &DefaultParser{}
	song, err := p.Parse(dir)
	if nil != err {
		t.Fatal(err)
	}
	return p, song
}

func TestParseInfo(t *testing.T) {
	_, song := parseFixture(t)

	if song.Name != "Last Wish" || song.Author != "BSWC Team" || song.BPM != 128 || song.SongOffset != 0.5 || song.SongFile != "song.egg" {
		t.Log("song", song)
		t.Fail()
	}
	if len(song.Difficulties) != 3 {
		t.Fatalf("difficulties %v", song.Difficulties)
	}

	hard, err := song.Find(game.CharacteristicStandard, game.RankHard)
	if nil != err {
		t.Fatal(err)
	}
	if hard.JumpSpeed != defaultJumpSpeed || hard.Filename != "HardStandard.dat" {
		t.Log("hard", hard)
		t.Fail()
	}
	one, err := song.Find("OneSaber", game.RankExpert)
	if nil != err {
		t.Fatal(err)
	}
	if one.JumpSpeed != 16 || one.JumpOffset != -0.5 {
		t.Log("one saber", one)
		t.Fail()
	}
	if _, err := song.Find(game.CharacteristicStandard, game.RankEasy); nil == err {
		t.Log("expected missing difficulty error")
		t.Fail()
	}
}

func TestVersionsNormaliseToTheSameStore(t *testing.T) {
	p, song := parseFixture(t)

	var stores []*game.Store
	for _, rank := range []game.Rank{game.RankHard, game.RankExpertPlus} {
		d, err := song.Find(game.CharacteristicStandard, rank)
		if nil != err {
			t.Fatal(err)
		}
		chart, err := p.Load(song, d)
		if nil != err {
			t.Fatal(err)
		}
		if chart.Sum == "" {
			t.Log("missing chart sum")
			t.Fail()
		}
		stores = append(stores, chart.Store)
	}

	v2, v3 := stores[0], stores[1]
	if v2.Len() != 4 || v3.Len() != 4 {
		t.Fatalf("lengths %v %v", v2.Len(), v3.Len())
	}
	if v3.NoteCount != 2 || v3.BombCount != 1 || v3.ObstacleCount != 1 {
		t.Log("counts", v3.NoteCount, v3.BombCount, v3.ObstacleCount)
		t.Fail()
	}
	for i := 0; i < v2.Len(); i++ {
		a, b := v2.At(i), v3.At(i)
		if a.Beat != b.Beat || a.Duration != b.Duration || a.Kind() != b.Kind() {
			t.Log("index", i, "v2", *a, "v3", *b)
			t.Fail()
			continue
		}
		if a.Kind() == game.KindNote {
			na, nb := a.Payload.(game.Note), b.Payload.(game.Note)
			if na.X != nb.X || na.Y != nb.Y || na.Color != nb.Color || na.Direction != nb.Direction {
				t.Log("index", i, "v2", na, "v3", nb)
				t.Fail()
			}
		}
	}

	wall := v3.At(1).Payload.(game.Obstacle)
	if wall.X != 3 || wall.Width != 1 || wall.Height != 5 || v3.At(1).EndBeat() != 8 {
		t.Log("wall", wall)
		t.Fail()
	}
	if n := v3.At(2).Payload.(game.Note); n.Direction != game.DirectionAny || n.AngleOffset != 15 {
		t.Log("note", n)
		t.Fail()
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	p, song := parseFixture(t)
	if err := ioutil.WriteFile(filepath.Join(song.Directory, "v4.dat"), []byte(`{"version": "4.0.0"}`), 0o644); nil != err {
		t.Fatal(err)
	}
	_, err := p.Load(song, game.Difficulty{Filename: "v4.dat"})
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Log("error", err)
		t.Fail()
	}
}

func TestParseRejectsZeroTempo(t *testing.T) {
	dir := t.TempDir()
	if err := ioutil.WriteFile(filepath.Join(dir, "Info.dat"), []byte(`{"_beatsPerMinute": 0}`), 0o644); nil != err {
		t.Fatal(err)
	}
	p := &DefaultParser{}
	if _, err := p.Parse(dir); !errors.Is(err, game.ErrInvalidTempo) {
		t.Log("error", err)
		t.Fail()
	}
}

func TestParseMissingInfo(t *testing.T) {
	p := &DefaultParser{}
	if _, err := p.Parse(t.TempDir()); nil == err {
		t.Log("expected an error for a directory without Info.dat")
		t.Fail()
	}
}
