//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"petshop-api/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	tests := []struct {
		name string
		k    queries.Keyset
	}{
		{
			name: "recent appointment",
			k:    queries.Keyset{StartsAt: time.Date(2025, 7, 1, 10, 0, 0, 123000, time.UTC), ID: 42},
		},
		{
			name: "start before 1970",
			k:    queries.Keyset{StartsAt: time.Date(1969, 12, 31, 23, 59, 0, 0, time.UTC), ID: 7},
		},
		{
			name: "epoch",
			k:    queries.Keyset{StartsAt: time.Unix(0, 0).UTC(), ID: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(tt.k))
			require.NoError(t, err)
			assert.True(t, tt.k.StartsAt.Equal(got.StartsAt), "want %s, got %s", tt.k.StartsAt, got.StartsAt)
			assert.Equal(t, tt.k.ID, got.ID)
		})
	}
}

func TestDecodeAfterCursor_Rejects(t *testing.T) {
	enc := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "unknown version", cursor: enc("v2:1:1")},
		{name: "missing id", cursor: enc("v1:1751364000000000")},
		{name: "dash separated", cursor: enc("v1:1751364000000000-5")},
		{name: "zero id", cursor: enc("v1:1751364000000000:0")},
		{name: "bad timestamp", cursor: enc("v1:soon:5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}
