package postgres

import (
	"context"
	"database/sql"
)

// DB is the thin seam the repository writes through; tests swap in a fake,
// production wraps *sql.DB via NewSQLDB.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
