// Package migrations embeds the versioned schema files so the binaries can
// migrate without a migrations directory next to them.
package migrations

import "embed"

//go:embed V*.sql
var Files embed.FS
