package bookmark

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"git.lost.host/meutraa/bsview/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

var ErrClosed = errors.New("bookmark store is not open")

type DefaultStore struct {
	db *sql.DB
}

func (s *DefaultStore) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists bookmarks
	  (
		  sum text not null primary key,
		  song text,
		  difficulty text,
		  beat real not null
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("unable to create bookmark table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		if err := s.db.Close(); nil != err {
			log.Println("unable to close bookmark database", err)
		}
		s.db = nil
	}
}

func (s *DefaultStore) Save(c *game.Chart, beat float64) error {
	if nil == s.db {
		return ErrClosed
	}
	_, err := s.db.Exec(
		`insert into bookmarks(sum, song, difficulty, beat) values(?, ?, ?, ?)
		 on conflict(sum) do update set beat = excluded.beat`,
		c.Sum, c.Song.Name, c.Difficulty.String(), beat,
	)
	if nil != err {
		return fmt.Errorf("unable to save bookmark: %w", err)
	}
	return nil
}

func (s *DefaultStore) Load(c *game.Chart) (float64, bool, error) {
	if nil == s.db {
		return 0, false, ErrClosed
	}
	var beat float64
	err := s.db.QueryRow("select beat from bookmarks where sum = ?", c.Sum).Scan(&beat)
	if err == sql.ErrNoRows {
		return 0, false, nil
	} else if nil != err {
		return 0, false, fmt.Errorf("unable to load bookmark: %w", err)
	}
	return beat, true, nil
}
