package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.ErrInvalidCursor

const cursorPrefix = CursorVersionV1 + ":"

// EncodeAfterCursor packs a keyset position. Microseconds match the precision
// of timestamptz so the decoded value compares equal in SQL.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := cursorPrefix + strconv.FormatInt(t.UnixMicro(), 10) + "-" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

// DecodeAfterCursor reports malformed input as a validation error.
func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	at, id, err := decodeCursor(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.WrapKind(err, errs.KindValidation, ErrInvalidCursor.Message())
	}
	return at, id, nil
}

func decodeCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, errs.New("empty cursor")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor encoding")
	}
	payload, ok := strings.CutPrefix(string(decoded), cursorPrefix)
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("unsupported cursor version")
	}
	micros, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("cursor is not <micros>-<uuid>")
	}
	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor timestamp")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor id")
	}
	return time.UnixMicro(ts), id, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
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

// Keyset is one page request for (created_at DESC, id DESC) ordered lists.
// Limit asks for one extra row so the caller can tell whether a next page exists.
type Keyset struct {
	AfterCreatedAt *time.Time
	AfterID        *uuid.UUID
	Limit          int32
}

func NewKeyset(cursor *Cursor, limit int) (Keyset, int, error) {
	limit = ValidateLimit(limit)
	// #nosec G115 -- limit is capped by MaxListLimit
	ks := Keyset{Limit: int32(limit + 1)}
	if cursor == nil || cursor.After == "" {
		return ks, limit, nil
	}
	at, id, err := DecodeAfterCursor(cursor.After)
	if err != nil {
		return Keyset{}, 0, err
	}
	ks.AfterCreatedAt = &at
	ks.AfterID = &id
	return ks, limit, nil
}

// Page trims the lookahead row and builds the next cursor from the last kept row.
func Page[T any](rows []T, limit int, key func(T) (time.Time, uuid.UUID)) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	at, id := key(rows[limit-1])
	return rows, &Cursor{After: EncodeAfterCursor(at, id)}
}
