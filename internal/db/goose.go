package db

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

type gooseDB struct {
	db *sql.DB
}

func withGoose(dsn string, fn func(*gooseDB) error) error {
	goose.SetBaseFS(migrations)

	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	return fn(&gooseDB{db: sqlDB})
}
