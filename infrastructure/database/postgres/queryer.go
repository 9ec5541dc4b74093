package postgres

import (
	"context"
	"database/sql"
)

type Queryer interface {
	Ping(ctx context.Context) error
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}
