// Package cache keeps the last successfully fetched page of each
// collection in a local SQLite database. Screens paint from the cache
// immediately on startup while the real fetch is in flight; a cached
// page is never shown in preference to a fresh response.
package cache

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tsudoi-club/tsudoi/internal/collection"
	"github.com/tsudoi-club/tsudoi/internal/model"
)

const currentSchemaVersion = 1

// Cache is a SQLite-backed page cache keyed by
// (collection, page, pageSize, term).
type Cache struct {
	db   *sql.DB
	path string
}

// Open creates or opens the cache database at path.
func Open(path string) (*Cache, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	c := &Cache{db: db, path: path}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.path
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) migrate() error {
	var version int
	err := c.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < currentSchemaVersion {
		schema := `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			);

			CREATE TABLE IF NOT EXISTS pages (
				collection TEXT NOT NULL,
				page INTEGER NOT NULL,
				page_size INTEGER NOT NULL,
				term TEXT NOT NULL DEFAULT '',
				items TEXT NOT NULL,
				total INTEGER NOT NULL,
				fetched_at TEXT NOT NULL,
				PRIMARY KEY (collection, page, page_size, term)
			);

			INSERT OR REPLACE INTO schema_version (version) VALUES (1);
		`
		if _, err := c.db.Exec(schema); err != nil {
			return err
		}
	}
	return nil
}

// Put stores a fetched page, replacing any previous entry for the same key.
func (c *Cache) Put(col model.Collection, page, pageSize int, term string, res collection.PageResult) error {
	items, err := json.Marshal(res.Items)
	if err != nil {
		return err
	}
	_, err = c.db.Exec(`
		INSERT OR REPLACE INTO pages (collection, page, page_size, term, items, total, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(col), page, pageSize, term, string(items), res.TotalItems,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Get returns the cached page for the key, its fetch time, and whether
// an entry existed.
func (c *Cache) Get(col model.Collection, page, pageSize int, term string) (collection.PageResult, time.Time, bool, error) {
	var (
		itemsJSON string
		total     int
		fetchedAt string
	)
	err := c.db.QueryRow(`
		SELECT items, total, fetched_at FROM pages
		WHERE collection = ? AND page = ? AND page_size = ? AND term = ?`,
		string(col), page, pageSize, term,
	).Scan(&itemsJSON, &total, &fetchedAt)
	if err == sql.ErrNoRows {
		return collection.PageResult{}, time.Time{}, false, nil
	}
	if err != nil {
		return collection.PageResult{}, time.Time{}, false, err
	}

	var items []model.Item
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return collection.PageResult{}, time.Time{}, false, err
	}
	at, _ := time.Parse(time.RFC3339, fetchedAt)
	return collection.PageResult{Items: items, TotalItems: total}, at, true, nil
}

// Clear drops every cached page for the given collection, used after a
// logout so another account's content is not briefly shown.
func (c *Cache) Clear(col model.Collection) error {
	_, err := c.db.Exec("DELETE FROM pages WHERE collection = ?", string(col))
	return err
}
