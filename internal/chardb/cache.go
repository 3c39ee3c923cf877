package chardb

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/sara/internal/thai"
	_ "modernc.org/sqlite"
)

// CachePath returns the location of the sqlite cache inside a config
// directory.
func CachePath(configDir string) string {
	return filepath.Join(configDir, "chardb.sqlite")
}

// CacheLoader reads the character database from a sqlite cache, the
// fastest tier of the loader chain. The cache is produced by SaveCache.
type CacheLoader struct {
	Path string
}

func (l *CacheLoader) Name() string { return "cache:" + l.Path }

func (l *CacheLoader) Load() (*DB, error) {
	if _, err := os.Stat(l.Path); err != nil {
		return nil, fmt.Errorf("cache unavailable: %w", err)
	}

	db, err := sql.Open("sqlite", l.Path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	entries := make(map[string]*thai.CharacterEntry)
	rows, err := db.Query("SELECT grapheme, entry FROM entries")
	if err != nil {
		return nil, fmt.Errorf("reading cache entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var grapheme, raw string
		if err := rows.Scan(&grapheme, &raw); err != nil {
			return nil, fmt.Errorf("scanning cache entry: %w", err)
		}
		var e thai.CharacterEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("decoding cache entry %s: %w", grapheme, err)
		}
		entries[grapheme] = &e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading cache entries: %w", err)
	}

	var patterns []*thai.ComplexVowelPattern
	prows, err := db.Query("SELECT pattern FROM patterns")
	if err != nil {
		return nil, fmt.Errorf("reading cache patterns: %w", err)
	}
	defer prows.Close()
	for prows.Next() {
		var raw string
		if err := prows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning cache pattern: %w", err)
		}
		var p thai.ComplexVowelPattern
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decoding cache pattern: %w", err)
		}
		patterns = append(patterns, &p)
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("reading cache patterns: %w", err)
	}

	var rulesRaw string
	if err := db.QueryRow("SELECT rules FROM rules WHERE id = 1").Scan(&rulesRaw); err != nil {
		return nil, fmt.Errorf("reading cache rules: %w", err)
	}
	var rules Rules
	if err := json.Unmarshal([]byte(rulesRaw), &rules); err != nil {
		return nil, fmt.Errorf("decoding cache rules: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("cache is empty")
	}

	return newDB(entries, patterns, &rules), nil
}

// SaveCache writes the database to a sqlite cache at path, replacing any
// existing cache.
func SaveCache(path string, src *DB) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	// Rebuild from scratch so a stale cache cannot survive.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing old cache: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("creating cache: %w", err)
	}
	defer db.Close()

	schema := `
CREATE TABLE entries (grapheme TEXT PRIMARY KEY, entry TEXT NOT NULL);
CREATE TABLE patterns (key TEXT PRIMARY KEY, pattern TEXT NOT NULL);
CREATE TABLE rules (id INTEGER PRIMARY KEY CHECK (id = 1), rules TEXT NOT NULL);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating cache schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting cache transaction: %w", err)
	}
	defer tx.Rollback()

	for _, g := range src.Graphemes() {
		raw, err := json.Marshal(src.Get(g))
		if err != nil {
			return fmt.Errorf("encoding entry %s: %w", g, err)
		}
		if _, err := tx.Exec("INSERT INTO entries (grapheme, entry) VALUES (?, ?)", g, string(raw)); err != nil {
			return fmt.Errorf("writing entry %s: %w", g, err)
		}
	}

	for _, p := range src.ComplexVowelPatterns() {
		raw, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encoding pattern %s: %w", p.Key, err)
		}
		if _, err := tx.Exec("INSERT INTO patterns (key, pattern) VALUES (?, ?)", p.Key, string(raw)); err != nil {
			return fmt.Errorf("writing pattern %s: %w", p.Key, err)
		}
	}

	rulesRaw, err := json.Marshal(src.Rules())
	if err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO rules (id, rules) VALUES (1, ?)", string(rulesRaw)); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cache: %w", err)
	}
	return nil
}
