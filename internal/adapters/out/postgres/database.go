package postgres

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"procurement/internal/adapters/out/postgres/clientrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/adapters/out/postgres/productrepo"
	"procurement/internal/adapters/out/postgres/userrepo"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionSettings describes how to reach the database.
type ConnectionSettings struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the settings as a postgres URL.
func (s ConnectionSettings) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   fmt.Sprintf("%s:%s", s.Host, s.Port),
		Path:   s.Name,
	}
	q := u.Query()
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Open connects with driver error translation enabled, so unique violations
// surface as gorm.ErrDuplicatedKey.
func Open(dsn string, log *slog.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if log != nil {
		cfg.Logger = logger.New(slogWriter{log: log.With("component", "gorm")}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			IgnoreRecordNotFoundError: true,
			LogLevel:                  logger.Warn,
		})
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// slogWriter adapts slog to gorm's printf-style logger.
type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Warn(fmt.Sprintf(format, args...))
}

// Migrate creates or updates the schema of every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&clientrepo.ClientDTO{},
		&productrepo.ProductDTO{},
		&userrepo.UserDTO{},
	)
}

// Tables lists the managed tables, in an order safe for TRUNCATE.
func Tables() []string {
	return []string{"orders", "clients", "products", "users"}
}
