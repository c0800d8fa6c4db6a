// Package query holds every SQL statement the service runs. Statements are built with goqu
// against the postgres dialect and executed on whatever DBTX the caller supplies, so the same
// method works on the pool and inside a unit-of-work transaction.
package query

import (
	"context"
	"strings"
	"time"

	"bibliolights/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const dialectPostgres = "postgres"

var ErrBuildingQuery = errs.New("building query failed")

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	dialect goqu.DialectWrapper
}

func New() *Queries {
	return &Queries{dialect: goqu.Dialect(dialectPostgres)}
}

type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

func toSQL(b sqlBuilder) (string, []any, error) {
	sql, args, err := b.ToSQL()
	if err != nil {
		return "", nil, errs.Mark(err, ErrBuildingQuery)
	}
	return sql, args, nil
}

func (q *Queries) exec(ctx context.Context, db DBTX, b sqlBuilder) (int64, error) {
	sql, args, err := toSQL(b)
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) queryRow(ctx context.Context, db DBTX, b sqlBuilder) (pgx.Row, error) {
	sql, args, err := toSQL(b)
	if err != nil {
		return nil, err
	}
	return db.QueryRow(ctx, sql, args...), nil
}

func (q *Queries) query(ctx context.Context, db DBTX, b sqlBuilder) (pgx.Rows, error) {
	sql, args, err := toSQL(b)
	if err != nil {
		return nil, err
	}
	return db.Query(ctx, sql, args...)
}

// Keyset is the position after which a newest-first listing continues.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

func keysetBefore(timeCol string, after *Keyset) goqu.Expression {
	return goqu.L("(?, ?) < (?::timestamptz, ?::uuid)", goqu.I(timeCol), goqu.I("id"), after.CreatedAt, after.ID.String())
}

// encodeTextArray renders a PostgreSQL array literal. pgx sends plain strings in text
// format, so the server parses this straight into a text[] column.
func encodeTextArray(values []string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		for _, r := range v {
			if r == '"' || r == '\\' {
				sb.WriteByte('\\')
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('"')
	}
	sb.WriteByte('}')
	return sb.String()
}
