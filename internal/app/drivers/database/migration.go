package database

import (
	"database/sql"
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func MigrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// RunMigrations applies every pending migration in the given direction and returns how many ran.
func RunMigrations(db *sql.DB, direction migrate.MigrationDirection) (int, error) {
	migrate.SetTable("schema_migrations")
	return migrate.Exec(db, "postgres", MigrationSource(), direction)
}
