package common

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/xo/dburl"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQL parses a database URL and opens the raw connection the migration
// applier runs DDL on.
func OpenSQL(databaseURL string) (*sql.DB, error) {
	u, err := dburl.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	if u.Driver != "postgres" {
		return nil, fmt.Errorf("unsupported database driver %q, need postgres", u.Driver)
	}
	db, err := sql.Open("postgres", u.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// OpenGorm layers the ORM over an already-open connection, so the models and
// the migration applier share one pool.
func OpenGorm(sqlDB *sql.DB) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}
