// Package migrations embeds the SQLite schema migrations for the governance
// store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
