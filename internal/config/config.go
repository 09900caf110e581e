// Package config holds the remote database connection settings. All values
// come from the environment with placeholder defaults; remote operations are
// only attempted once every required field has been replaced with a real
// value.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Remote holds connection parameters for the remote Postgres store.
type Remote struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
}

// DefaultRemote returns a Remote with placeholder values. A config in this
// state fails Valid() and every remote operation short-circuits to Skipped.
func DefaultRemote() Remote {
	return Remote{
		Host:     "placeholder-host",
		Port:     5432,
		Database: "placeholder-db",
		User:     "placeholder-user",
		Password: "placeholder-password",
		SSLMode:  "require",
	}
}

// LoadRemote reads remote connection settings from environment variables,
// falling back to placeholder defaults for any unset value.
func LoadRemote() Remote {
	cfg := DefaultRemote()

	if v := os.Getenv("UCMAP_DB_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("UCMAP_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := os.Getenv("UCMAP_DB_NAME"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("UCMAP_DB_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("UCMAP_DB_PASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("UCMAP_DB_SSLMODE"); v != "" {
		cfg.SSLMode = v
	}

	return cfg
}

// Valid reports whether all required fields are present and none of them is
// still a placeholder default.
func (r Remote) Valid() bool {
	for _, field := range []string{r.Host, r.Database, r.User, r.Password} {
		if field == "" || strings.HasPrefix(field, "placeholder") {
			return false
		}
	}
	return true
}

// DSN builds a pgx-compatible connection string.
func (r Remote) DSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		r.Host, r.Port, r.Database, r.User, r.Password, r.SSLMode)
}

// DataDir resolves the local data directory: UCMAP_DATA if set, otherwise
// ~/.ucmap.
func DataDir() (string, error) {
	if dir := os.Getenv("UCMAP_DATA"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".ucmap"), nil
}
