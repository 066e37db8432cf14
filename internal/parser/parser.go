package parser

import "git.lost.host/meutraa/bsview/internal/game"

type Parser interface {
	// Parse reads the song metadata of a map directory
	Parse(dir string) (*game.Song, error)

	// Load reads the objects of one difficulty of a parsed song
	Load(song *game.Song, difficulty game.Difficulty) (*game.Chart, error)
}
