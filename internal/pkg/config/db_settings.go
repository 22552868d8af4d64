package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PostgresDbType identifies a PostgreSQL database
const PostgresDbType = "postgres"

// SqliteDbType identifies a SQLite database
const SqliteDbType = "sqlite"

// DatabaseSettings holds connection settings for the key and message store database
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	return nil
}
