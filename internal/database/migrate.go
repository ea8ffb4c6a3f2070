package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"edugenie/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Direction selects which way RunMigrations moves the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}
	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	return m, nil
}

// RunMigrations applies (Up) or reverts (Down) every embedded migration.
// Being already at the target version is not an error.
func RunMigrations(db *sql.DB, dir Direction) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	switch dir {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", dir)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", dir, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("could not read migration version: %w", verr)
	}
	logger.Get().Info("Migrations completed",
		zap.String("direction", string(dir)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}
