package helper

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	_ "github.com/lib/pq"
)

// DatabaseConfiguration holds the PostgreSQL connection settings of the
// gazetteer extension store.
type DatabaseConfiguration struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	Database string `env:"DB_DATABASE" env-default:"nluparsers"`
	Username string `env:"DB_USERNAME" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:"postgres"`
	Schema   string `env:"DB_SCHEMA" env-default:"public"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
}

// NewDatabaseConfiguration reads the database configuration from the
// environment, falling back to the defaults above.
func NewDatabaseConfiguration() (*DatabaseConfiguration, error) {
	config := &DatabaseConfiguration{}
	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, NewError("read database environment", err)
	}
	return config, nil
}

// ConnectionString returns the lib/pq connection string.
func (c *DatabaseConfiguration) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode, c.Schema,
	)
}

// Database bundles the connection pool with a named logger.
type Database struct {
	Name     string
	Instance *sql.DB
	Logger   *slog.Logger
}

// NewDatabase opens and pings the database, panicking if it is unreachable.
func NewDatabase(name string, config *DatabaseConfiguration, logger *slog.Logger) *Database {
	db, err := ConnectDatabase(config)
	if err != nil {
		log.Panicf("error connecting to database %s: %v", name, err)
	}
	return &Database{
		Name:     name,
		Instance: db,
		Logger:   logger.With(slog.String("database", name)),
	}
}

// NewTestDatabase connects with a discarding logger.
func NewTestDatabase(config *DatabaseConfiguration) *Database {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDatabase("test", config, logger)
}

// ConnectDatabase opens a connection pool and waits for the server to answer.
func ConnectDatabase(config *DatabaseConfiguration) (*sql.DB, error) {
	db, err := sql.Open("postgres", config.ConnectionString())
	if err != nil {
		return nil, NewError("open database", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, NewError("ping database", err)
	}
	return db, nil
}

// Close closes the connection pool.
func (d *Database) Close() error {
	return d.Instance.Close()
}
