package db

import (
	"database/sql"
	"errors"
	"fmt"

	"drawpoker-server/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/sirupsen/logrus"

	_ "github.com/golang-migrate/migrate/v4/source/file" // needed
	_ "github.com/lib/pq"                                // needed
)

// ErrNoDSN is returned when no database is configured
var ErrNoDSN = errors.New("no database DSN is configured")

var instance *sql.DB

// Enabled returns true if a database is configured
func Enabled() bool {
	return config.Instance().PGDSN != ""
}

// Instance returns a database instance
func Instance() *sql.DB {
	if instance == nil {
		if err := LoadInstance(); err != nil {
			panic(err)
		}
	}

	return instance
}

// LoadInstance will load the database instance
func LoadInstance() error {
	dsn := config.Instance().PGDSN
	if dsn == "" {
		return ErrNoDSN
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return err
	}

	instance = db
	return nil
}

// Migrate runs the migrations
func Migrate() error {
	migrationsPath := config.Instance().MigrationsPath
	db := Instance()

	logrus.WithField("migrationsPath", migrationsPath).Info("running migrations")
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsPath), "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Scanner is an interface that sql should've provided
// No snark here...
type Scanner interface {
	Scan(...interface{}) error
}
