// Package migrations embeds the schema migrations, one directory per driver.
package migrations

import "embed"

// FS holds postgres/*.sql and sqlite3/*.sql.
//
//go:embed postgres/*.sql sqlite3/*.sql
var FS embed.FS
