package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"petshop-api/internal/pkg/errs"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.Invalid("after is not a valid cursor")

// Keyset is the last row of a page in (starts_at, id) order.
type Keyset struct {
	StartsAt time.Time
	ID       int64
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Uses microsecond precision to align with PostgreSQL timestamp precision.
// The separator is ':' because micros are negative before 1970.
func EncodeAfterCursor(k Keyset) string {
	cursorData := fmt.Sprintf("%s:%d:%d", CursorVersionV1, k.StartsAt.UnixMicro(), k.ID)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (Keyset, error) {
	if cursor == "" {
		return Keyset{}, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return Keyset{}, fmt.Errorf("invalid cursor encoding: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return Keyset{}, fmt.Errorf("unsupported cursor version")
	}

	rawMicros, rawID, ok := strings.Cut(payload, ":")
	if !ok {
		return Keyset{}, fmt.Errorf("invalid cursor format: expected '<micros>:<id>'")
	}

	micros, err := strconv.ParseInt(rawMicros, 10, 64)
	if err != nil {
		return Keyset{}, fmt.Errorf("invalid timestamp: %w", err)
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return Keyset{}, fmt.Errorf("invalid id %q", rawID)
	}

	return Keyset{StartsAt: time.UnixMicro(micros).UTC(), ID: id}, nil
}

// ValidateLimit clamps limit into [1, max], using def when it is not positive.
func ValidateLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
