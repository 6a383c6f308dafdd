// Package store opens and migrates the embedded SQLite database backing all
// repositories.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	title       TEXT NOT NULL,
	notes       TEXT,
	due_date    TEXT NOT NULL,
	due_time    TEXT NOT NULL,
	category    TEXT NOT NULL,
	done        INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_user_due ON tasks(user_id, due_date);

CREATE TABLE IF NOT EXISTS recipes (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	title       TEXT NOT NULL,
	servings    INTEGER,
	notes       TEXT,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_recipes_user ON recipes(user_id);

CREATE TABLE IF NOT EXISTS ingredients (
	id         TEXT PRIMARY KEY,
	recipe_id  TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	qty        REAL,
	unit       TEXT,
	position   INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_ingredients_recipe ON ingredients(recipe_id);

CREATE TABLE IF NOT EXISTS meal_plan_slots (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	day        TEXT NOT NULL,
	slot       TEXT NOT NULL,
	recipe_id  TEXT REFERENCES recipes(id) ON DELETE SET NULL,
	note       TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	UNIQUE(user_id, day, slot)
);
CREATE INDEX IF NOT EXISTS idx_meal_plan_slots_user_day ON meal_plan_slots(user_id, day);

CREATE TABLE IF NOT EXISTS grocery_list_items (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	source_week TEXT NOT NULL,
	name        TEXT NOT NULL,
	qty         REAL,
	unit        TEXT,
	checked     INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_grocery_items_user_week ON grocery_list_items(user_id, source_week);
`

// Open opens (creating if needed) the SQLite database at path and applies the
// schema. The parent directory is created if missing.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// modernc sqlite is not safe for concurrent writers on one connection pool
	// beyond what SQLite itself serializes; WAL keeps readers unblocked.
	pragmas := []string{
		`PRAGMA journal_mode = WAL`,
		`PRAGMA foreign_keys = ON`,
		`PRAGMA busy_timeout = 5000`,
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return db, nil
}
