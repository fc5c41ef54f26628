// Package migrations embeds the goose SQL migrations for every bounded
// context, applied in filename order.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sql/*.sql
var files embed.FS

// FS returns the migration files rooted at their directory, ready for
// migrator.Up.
func FS() fs.FS {
	sub, err := fs.Sub(files, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}
