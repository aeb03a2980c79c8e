package migrations

import "embed"

// FS embeds the SQL migrations so the binary is self-contained.
//
//go:embed *.sql
var FS embed.FS
