// Package catalog stores the places shown on the map and in the sheet.
package catalog

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "platemap"
	dbFileName = "platemap.db"
)

// Place is a restaurant or food spot. X and Y are normalized map
// coordinates in [0, 1], origin at the top-left.
type Place struct {
	ID      int64
	Name    string
	Cuisine string
	Address string
	Rating  float64
	Reviews int
	X       float64
	Y       float64
}

// Store is the SQLite-backed catalog.
type Store struct {
	db *sql.DB
}

// Open opens the catalog at its default XDG data location.
func Open() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(path)
}

// DefaultPath returns the XDG data path of the catalog database.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// OpenPath opens the catalog at path, creating it if needed. ":memory:"
// opens a throwaway in-memory database.
func OpenPath(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps in-memory databases alive across calls.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
