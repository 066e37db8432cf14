package parser

import (
	"encoding/json"

	"git.lost.host/meutraa/bsview/internal/game"
)

// Note types of the 2.x format
const (
	v2NoteLeft  = 0
	v2NoteRight = 1
	v2Bomb      = 3
)

// Obstacle types of the 2.x format
const (
	v2WallFull   = 0
	v2WallCrouch = 1
)

type difficultyV2 struct {
	Notes []struct {
		Time         float64 `json:"_time"`
		LineIndex    int     `json:"_lineIndex"`
		LineLayer    int     `json:"_lineLayer"`
		Type         int     `json:"_type"`
		CutDirection int     `json:"_cutDirection"`
	} `json:"_notes"`
	Obstacles []struct {
		Time      float64 `json:"_time"`
		LineIndex int     `json:"_lineIndex"`
		LineLayer int     `json:"_lineLayer"`
		Type      int     `json:"_type"`
		Duration  float64 `json:"_duration"`
		Width     int     `json:"_width"`
		Height    int     `json:"_height"`
	} `json:"_obstacles"`
}

func convertV2(data []byte) ([]game.Object, error) {
	var in difficultyV2
	if err := json.Unmarshal(data, &in); nil != err {
		return nil, err
	}

	objects := make([]game.Object, 0, len(in.Notes)+len(in.Obstacles))
	for _, n := range in.Notes {
		switch n.Type {
		case v2NoteLeft, v2NoteRight:
			payload, err := note(n.LineIndex, n.LineLayer, n.Type, n.CutDirection, 0)
			if nil != err {
				return nil, err
			}
			objects = append(objects, game.NewNote(n.Time, payload))
		case v2Bomb:
			objects = append(objects, game.NewBomb(n.Time, game.Bomb{X: n.LineIndex, Y: n.LineLayer}))
		}
	}
	for _, o := range in.Obstacles {
		wall := game.Obstacle{X: o.LineIndex, Width: o.Width}
		switch o.Type {
		case v2WallFull:
			wall.Y, wall.Height = 0, 5
		case v2WallCrouch:
			wall.Y, wall.Height = 2, 3
		default:
			// 2.6 walls carry their own layer and height
			wall.Y, wall.Height = o.LineLayer, o.Height
		}
		objects = append(objects, game.NewObstacle(o.Time, o.Duration, wall))
	}
	return objects, nil
}
