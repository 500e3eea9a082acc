// Package migrations embeds the versioned schema so the migrate command and
// database tests apply the same files.
package migrations

import "embed"

//go:embed *.sql atlas.sum
var FS embed.FS

// Files lists the SQL migrations in apply order.
var Files = []string{
	"001_initial_schema.sql",
	"002_loan_status_refresh.sql",
}
