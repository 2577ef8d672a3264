package store

import (
	"context"
	"database/sql"
)

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Getter interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

type Selecter interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// DB is the slice of *sqlx.DB the stores use. Every store operation is
// a single statement against the shared pool; no transaction spans two
// of them.
type DB interface {
	Execer
	Getter
	Selecter
}
