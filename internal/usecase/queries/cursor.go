package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bibliolights/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.Validation("invalid pagination cursor")

// Position is the (created_at, id) pair a newest-first listing resumes after.
type Position struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%d-%s", CursorVersionV1, t.UnixMicro(), id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (Position, error) {
	if cursor == "" {
		return Position{}, fmt.Errorf("cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return Position{}, fmt.Errorf("invalid cursor encoding: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return Position{}, fmt.Errorf("unsupported cursor version")
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("invalid cursor format: expected '<micros>-<uuid>'")
	}
	micros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Position{}, fmt.Errorf("invalid timestamp: %w", err)
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return Position{}, fmt.Errorf("invalid UUID: %w", err)
	}
	return Position{CreatedAt: time.UnixMicro(micros), ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// decodeCursor turns an optional cursor into the position to resume after.
func decodeCursor(cursor *Cursor) (*Position, error) {
	if cursor == nil || cursor.After == "" {
		return nil, nil
	}
	pos, err := DecodeAfterCursor(cursor.After)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidCursor, err.Error())
	}
	return &pos, nil
}

// paginate trims a limit+1 result set and builds the cursor for the next page.
func paginate[T any](rows []T, limit int, key func(T) (time.Time, uuid.UUID)) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	at, id := key(rows[limit-1])
	return rows[:limit], &Cursor{After: EncodeAfterCursor(at, id)}
}
