// Package migrations embeds the SQL schema migrations for every supported
// database driver.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed postgresql/*.sql mysql/*.sql
var files embed.FS

// FS returns the migrations of driver ("postgres" or "mysql").
func FS(driver string) (fs.FS, error) {
	var dir string
	switch driver {
	case "postgres":
		dir = "postgresql"
	case "mysql":
		dir = "mysql"
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	return fs.Sub(files, dir)
}
