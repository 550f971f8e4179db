// Package migrations embeds the SQL schema for the Postgres sponsor store and
// the player directory, registered with bun/migrate for external runners.
package migrations

import (
	"embed"

	"github.com/uptrace/bun/migrate"
)

//go:embed *.sql
var migrationFS embed.FS

// FS exposes the embedded SQL for runners that bypass bun.
var FS = migrationFS

// Migrations is the bun/migrate registry for this module.
var Migrations = migrate.NewMigrations()

func init() {
	_ = Migrations.Discover(migrationFS)
}
