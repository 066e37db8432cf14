package game

import "fmt"

// Song is the metadata of a map directory, read from Info.dat.
type Song struct {
	Directory string

	Version         string
	Name            string
	SubName         string
	Author          string
	Mapper          string
	SongFile        string
	CoverImage      string
	BPM             float64
	SongOffset      float64 // Seconds
	Shuffle         float64
	ShufflePeriod   float64
	PreviewStart    float64
	PreviewDuration float64

	Difficulties []Difficulty
}

func (s *Song) Find(characteristic string, rank Rank) (Difficulty, error) {
	for _, d := range s.Difficulties {
		if d.Characteristic == characteristic && d.Rank == rank {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%v has no %v %v difficulty", s.Name, characteristic, rank)
}

// Chart is one playable difficulty of a song.
type Chart struct {
	Song       *Song
	Difficulty Difficulty
	Store      *Store
	Sum        string // Hash of the difficulty file content
}

func (c *Chart) Parameters() TimingParameters {
	return TimingParameters{
		BPM:        c.Song.BPM,
		JumpSpeed:  c.Difficulty.JumpSpeed,
		JumpOffset: c.Difficulty.JumpOffset,
	}
}
