// Package migrations embeds the goose schema migrations of the local store,
// one directory per SQL dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql
var SQLite embed.FS

//go:embed postgres/*.sql
var Postgres embed.FS
