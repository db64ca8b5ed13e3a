package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if err := c.Lists.validate(); err != nil {
		return fmt.Errorf("lists: %w", err)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case DriverPostgres:
		if s.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required for driver %q", s.Driver)
		}
		if s.Postgres.MinConns > s.Postgres.MaxConns {
			return fmt.Errorf("postgres.min_conns (%d) exceeds max_conns (%d)", s.Postgres.MinConns, s.Postgres.MaxConns)
		}
	case DriverSQLite:
		if s.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required for driver %q", s.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %q or %q)", s.Driver, DriverPostgres, DriverSQLite)
	}
	return nil
}

func (l *ListsConfig) validate() error {
	if l.MaxCategoriesPerUser <= 0 {
		return fmt.Errorf("max_categories_per_user must be > 0 (got %d)", l.MaxCategoriesPerUser)
	}
	if l.MaxEntriesPerList <= 0 {
		return fmt.Errorf("max_entries_per_list must be > 0 (got %d)", l.MaxEntriesPerList)
	}
	if l.MaxTitleLength <= 0 {
		return fmt.Errorf("max_title_length must be > 0 (got %d)", l.MaxTitleLength)
	}
	if l.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be > 0 (got %d)", l.MaxTextLength)
	}
	return nil
}
