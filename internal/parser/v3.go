package parser

import (
	"encoding/json"

	"git.lost.host/meutraa/bsview/internal/game"
)

type difficultyV3 struct {
	ColorNotes []struct {
		B float64 `json:"b"`
		X int     `json:"x"`
		Y int     `json:"y"`
		C int     `json:"c"`
		D int     `json:"d"`
		A float64 `json:"a"`
	} `json:"colorNotes"`
	BombNotes []struct {
		B float64 `json:"b"`
		X int     `json:"x"`
		Y int     `json:"y"`
	} `json:"bombNotes"`
	Obstacles []struct {
		B float64 `json:"b"`
		D float64 `json:"d"`
		X int     `json:"x"`
		Y int     `json:"y"`
		W int     `json:"w"`
		H int     `json:"h"`
	} `json:"obstacles"`
}

func convertV3(data []byte) ([]game.Object, error) {
	var in difficultyV3
	if err := json.Unmarshal(data, &in); nil != err {
		return nil, err
	}

	objects := make([]game.Object, 0, len(in.ColorNotes)+len(in.BombNotes)+len(in.Obstacles))
	for _, n := range in.ColorNotes {
		payload, err := note(n.X, n.Y, n.C, n.D, n.A)
		if nil != err {
			return nil, err
		}
		objects = append(objects, game.NewNote(n.B, payload))
	}
	for _, b := range in.BombNotes {
		objects = append(objects, game.NewBomb(b.B, game.Bomb{X: b.X, Y: b.Y}))
	}
	for _, o := range in.Obstacles {
		objects = append(objects, game.NewObstacle(o.B, o.D, game.Obstacle{
			X:      o.X,
			Y:      o.Y,
			Width:  o.W,
			Height: o.H,
		}))
	}
	return objects, nil
}
