package config

import (
	"fmt"
	"os"
)

// Config holds the MySQL connection settings. Every field is required;
// Load fails if any of the source variables is unset.
type Config struct {
	Name     string
	User     string
	Password string
	Host     string
	Port     string
}

var requiredVars = []string{"DB_NAME", "DB_USER_NAME", "DB_PASS", "DB_URL", "DB_PORT"}

func Load() (*Config, error) {
	for _, envVar := range requiredVars {
		if os.Getenv(envVar) == "" {
			return nil, fmt.Errorf("environment variable %s is not set", envVar)
		}
	}

	return &Config{
		Name:     os.Getenv("DB_NAME"),
		User:     os.Getenv("DB_USER_NAME"),
		Password: os.Getenv("DB_PASS"),
		Host:     os.Getenv("DB_URL"),
		Port:     os.Getenv("DB_PORT"),
	}, nil
}

// DSN builds the server-level DSN. The database name is deliberately not
// part of it: CreateDatabase selects the database with USE after creating
// it, so connecting works before the database exists.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port)
}
