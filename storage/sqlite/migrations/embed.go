// Package migrations holds the embedded slot store schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
