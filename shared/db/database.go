package db

import (
	"context"
	"database/sql"
)

// Database is a SQL store with an explicit lifecycle: Connect at startup, Close at shutdown
type Database interface {
	Connect(ctx context.Context) error
	Close() error
	DB() *sql.DB
}
