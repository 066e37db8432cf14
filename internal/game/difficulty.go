package game

import (
	"fmt"
	"strings"
)

// Rank is the difficulty rank stored in Info.dat.
type Rank int

const (
	RankEasy       Rank = 1
	RankNormal     Rank = 3
	RankHard       Rank = 5
	RankExpert     Rank = 7
	RankExpertPlus Rank = 9
)

var rankNames = map[Rank]string{
	RankEasy:       "Easy",
	RankNormal:     "Normal",
	RankHard:       "Hard",
	RankExpert:     "Expert",
	RankExpertPlus: "ExpertPlus",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// ParseRank accepts the difficulty names used in map files, ignoring case.
func ParseRank(s string) (Rank, error) {
	for r, name := range rankNames {
		if strings.EqualFold(name, s) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// CharacteristicStandard is the two saber characteristic and the default.
const CharacteristicStandard = "Standard"

type Difficulty struct {
	Characteristic string
	Rank           Rank
	Filename       string  // Difficulty file relative to the map directory
	JumpSpeed      float64 // Note jump movement speed
	JumpOffset     float64 // Note jump start beat offset
}

func (d Difficulty) String() string {
	return d.Characteristic + " " + d.Rank.String()
}
