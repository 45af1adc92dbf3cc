// Package migrations embeds the identity server's SQLite schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
