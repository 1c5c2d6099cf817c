package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// DB wraps a database/sql handle with the driver it was opened with and
// the error classifier matching that driver.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations for the driver of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect())
}

// Driver returns the database/sql driver name db was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Classify reports whether err may succeed on retry.
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

func (db *DB) dialect() string {
	if db.driver == config.DriverSQLite {
		return migrations.DialectSQLite
	}
	return migrations.DialectPostgres
}

// builder returns a squirrel statement builder with the placeholder format
// of the driver.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == config.DriverSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// wrap joins kind and err, adding [ErrRetryable] when the classifier says
// the failure is transient.
func (db *DB) wrap(kind, err error) error {
	if db.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrRetryable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// isUniqueViolation reports a unique constraint failure on either driver.
func isUniqueViolation(err error) bool {
	if postgresCode(err) == pgerrcode.UniqueViolation {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

// now is the timestamp written to created_at / updated_at columns. Microsecond
// precision matches what Postgres keeps.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
