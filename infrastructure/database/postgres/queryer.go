package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o que os repositórios usam da conexão; *sqlx.DB e *sqlx.Tx servem
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}
