package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// InitDB opens the check-history database. The service runs fine
// without one; callers skip this entirely when no URL is configured,
// and GetDB returns nil in that case.
func InitDB(connStr string) error {
	if connStr == "" {
		return fmt.Errorf("database connection string is empty")
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	return DB.Ping()
}

func GetDB() *sql.DB {
	return DB
}
