package migrations

import "embed"

// FS holds the SQL migrations applied by cmd/migrate and the e2e harness.
//
//go:embed *.sql
var FS embed.FS
