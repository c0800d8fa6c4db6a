package pgconv

import (
	"database/sql"
	"errors"
	"math"

	"github.com/jackc/pgx/v5"
)

// IntToInt32 clamps n into the INTEGER column range.
func IntToInt32(n int) int32 {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	default:
		return int32(n)
	}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
