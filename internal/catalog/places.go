package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a place does not exist.
var ErrNotFound = errors.New("place not found")

// ErrInvalidPlace is returned when a place fails validation.
var ErrInvalidPlace = errors.New("invalid place")

// Validate checks the fields a place needs to be shown on the map.
func (p Place) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPlace)
	}
	if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
		return fmt.Errorf("%w: %q coordinates (%g, %g) outside the map", ErrInvalidPlace, p.Name, p.X, p.Y)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w: %q rating %g outside 0-5", ErrInvalidPlace, p.Name, p.Rating)
	}
	return nil
}

// List returns all places ordered by name.
func (s *Store) List() ([]Place, error) {
	rows, err := s.db.Query(`
		SELECT id, name, cuisine, address, rating, reviews, x, y
		FROM places
		ORDER BY name COLLATE NOCASE, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var places []Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

// Get returns the place with the given id.
func (s *Store) Get(id int64) (Place, error) {
	row := s.db.QueryRow(`
		SELECT id, name, cuisine, address, rating, reviews, x, y
		FROM places WHERE id = ?
	`, id)
	p, err := scanPlace(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Place{}, ErrNotFound
	}
	return p, err
}

// Add inserts a place and returns its id.
func (s *Store) Add(p Place) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return insertPlace(s.db, p)
}

// Seed inserts places in one transaction, but only into an empty catalog.
// It returns the number of places inserted.
func (s *Store) Seed(places []Place) (int, error) {
	for _, p := range places {
		if err := p.Validate(); err != nil {
			return 0, err
		}
	}

	inserted := 0
	err := withTx(s.db, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM places`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, p := range places {
			if _, err := insertPlace(tx, p); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertPlace(db execer, p Place) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO places (name, cuisine, address, rating, reviews, x, y, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Name, p.Cuisine, p.Address, p.Rating, p.Reviews, p.X, p.Y, time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlace(row scanner) (Place, error) {
	var p Place
	var cuisine, address sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &cuisine, &address, &p.Rating, &p.Reviews, &p.X, &p.Y); err != nil {
		return Place{}, err
	}
	p.Cuisine = nullString(cuisine)
	p.Address = nullString(address)
	return p, nil
}
