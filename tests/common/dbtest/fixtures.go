//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type CatalogEntryFixture struct {
	Title           string
	Author          string
	Price           decimal.Decimal
	DeliveryOptions []string
	Quota           int
	Reserved        int
}

func DefaultCatalogEntry() CatalogEntryFixture {
	return CatalogEntryFixture{
		Title:           "Cien años de soledad",
		Author:          "Gabriel García Márquez",
		Price:           decimal.RequireFromString("19.90"),
		DeliveryOptions: []string{"5 días", "10 días"},
		Quota:           3,
	}
}

func CreateCatalogEntry(t *testing.T, db DBLike, f CatalogEntryFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO catalog_entries (id, title, author, price, delivery_options, quota, reserved)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, f.Title, f.Author, f.Price, f.DeliveryOptions, f.Quota, f.Reserved)
	require.NoError(t, err)
	return id
}

func ReservedCount(t *testing.T, db DBLike, entryID uuid.UUID) int {
	t.Helper()

	var reserved int
	err := db.QueryRow(context.Background(),
		"SELECT reserved FROM catalog_entries WHERE id = $1", entryID).Scan(&reserved)
	require.NoError(t, err)
	return reserved
}

func CountBookRequests(t *testing.T, db DBLike, entryID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM book_requests WHERE catalog_entry_id = $1", entryID).Scan(&n)
	require.NoError(t, err)
	return n
}

// NullProfileColumns reports how many optional profile columns are NULL for the user.
func NullProfileColumns(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `
		SELECT (first_name IS NULL)::int + (last_name IS NULL)::int + (address IS NULL)::int
		     + (city IS NULL)::int + (country IS NULL)::int + (phone_number IS NULL)::int
		     + (date_of_birth IS NULL)::int
		FROM user_details WHERE user_id = $1`, userID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
