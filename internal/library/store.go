// Package library indexes geometry files by their canonical names in a
// SQLite database, so a collection can be searched by rank or facet count
// without re-reading every file.
package library

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/polytopia/polyname/internal/config"
	"github.com/polytopia/polyname/internal/name"
	"github.com/polytopia/polyname/internal/off"
)

// Entry is one indexed geometry file. Name holds the serialized canonical
// name and is empty when the file has none; Rank and Facets are unset when
// they cannot be derived from the name.
type Entry struct {
	ID        string
	Path      string
	Label     string
	Name      string
	Rank      int
	HasRank   bool
	Facets    int
	HasFacets bool
}

// Store is a handle to the index database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id     TEXT PRIMARY KEY,
	path   TEXT NOT NULL UNIQUE,
	label  TEXT NOT NULL,
	name   TEXT NOT NULL DEFAULT '',
	rank   INTEGER,
	facets INTEGER
);
CREATE INDEX IF NOT EXISTS entries_rank ON entries(rank);
CREATE INDEX IF NOT EXISTS entries_facets ON entries(facets);
`

// Open opens or creates the index database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("library: open %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("library: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put upserts an entry keyed by file path. A new path gets a fresh id; an
// existing path keeps its id and has the rest of the row replaced.
func (s *Store) Put(ctx context.Context, e Entry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, path, label, name, rank, facets)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			label = excluded.label,
			name = excluded.name,
			rank = excluded.rank,
			facets = excluded.facets`,
		e.ID, e.Path, e.Label, e.Name, nullable(e.Rank, e.HasRank), nullable(e.Facets, e.HasFacets))
	if err != nil {
		return "", fmt.Errorf("library: put %s: %w", e.Path, err)
	}
	// The conflict branch keeps the stored id, so read it back.
	var id string
	if err := s.db.QueryRowContext(ctx,
		`SELECT id FROM entries WHERE path = ?`, e.Path).Scan(&id); err != nil {
		return "", fmt.Errorf("library: put %s: %w", e.Path, err)
	}
	return id, nil
}

// Get returns the entry with the given id.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, path, label, name, rank, facets
		FROM entries WHERE id = ?`, id)
	return scanEntry(row)
}

// ByRank returns all entries of the given rank, ordered by label.
func (s *Store) ByRank(ctx context.Context, rank int) ([]Entry, error) {
	return s.query(ctx, `
		SELECT id, path, label, name, rank, facets
		FROM entries WHERE rank = ? ORDER BY label`, rank)
}

// ByFacetCount returns all entries with the given facet count, ordered by
// label.
func (s *Store) ByFacetCount(ctx context.Context, facets int) ([]Entry, error) {
	return s.query(ctx, `
		SELECT id, path, label, name, rank, facets
		FROM entries WHERE facets = ? ORDER BY label`, facets)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("library: query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var e Entry
	var rank, facets sql.NullInt64
	if err := row.Scan(&e.ID, &e.Path, &e.Label, &e.Name, &rank, &facets); err != nil {
		return Entry{}, fmt.Errorf("library: scan row: %w", err)
	}
	e.Rank, e.HasRank = int(rank.Int64), rank.Valid
	e.Facets, e.HasFacets = int(facets.Int64), facets.Valid
	return e, nil
}

func nullable(v int, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

// Scan walks dir for geometry files, reads their stored names under the
// regime R and upserts one entry per file. Files without a readable name
// are indexed by label only. Returns the number of files indexed.
func Scan[R name.Regime](ctx context.Context, s *Store, dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !geometryFile(path) {
			return nil
		}
		n, label, err := off.ReadName[R](path)
		if err != nil {
			return err
		}
		e := Entry{Path: path, Label: label}
		if n != nil {
			e.Name = name.Print(n)
			e.Rank, e.HasRank = name.Rank(n)
			e.Facets, e.HasFacets = name.FacetCount(n)
		}
		if _, err := s.Put(ctx, e); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func geometryFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range config.GeometryFileExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
