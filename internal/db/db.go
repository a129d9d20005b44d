package db

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open opens a Postgres connection using the pgx stdlib driver and verifies it.
func Open(dsn string) (*sql.DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// MustOpen is Open for main functions; it panics on failure.
func MustOpen(dsn string) *sql.DB {
	if dsn == "" {
		panic("DATABASE_URL is not set")
	}
	conn, err := Open(dsn)
	if err != nil {
		panic(err)
	}
	return conn
}
