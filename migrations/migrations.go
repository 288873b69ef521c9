// Package migrations embeds the schema so the server binary can bootstrap
// its own database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
