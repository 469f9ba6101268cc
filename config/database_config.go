package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type Database struct {
	*sqlx.DB
}

// NewDatabaseConnection : driver "postgres" (lib/pq) или "sqlite" (modernc)
func NewDatabaseConnection(dbDriver string, dbConnectionStr string) (*Database, error) {
	database, err := sqlx.Connect(dbDriver, dbConnectionStr)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ошибка пинга БД: %w", err)
	}

	if dbDriver == "sqlite" {
		// modernc sqlite не допускает параллельную запись из нескольких соединений
		database.SetMaxOpenConns(1)
	}

	slog.Info("подключение к БД успешно выполнено", "driver", dbDriver)
	return &Database{
		database,
	}, nil
}

func (db *Database) Close() error {
	err := db.DB.Close()
	if err != nil {
		return fmt.Errorf("ошибка закрытия соединения с БД: %w", err)
	}

	return nil
}

func SetupDatabase(driver, dsn string) (*Database, error) {
	return NewDatabaseConnection(driver, dsn)
}
