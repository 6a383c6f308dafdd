package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/priyanka7rc/laya/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed recipe repository.
func New(db *sql.DB, l log.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(action string) string {
	return fmt.Sprintf("recipe.sqlite.%s", action)
}
