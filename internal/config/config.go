package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 3000
	defaultEnv        = "development"
)

// AppConfig holds runtime startup configuration loaded from YAML.
// DatabaseURL may legitimately be empty: the service then runs in the
// unconfigured-store state, where reads degrade and writes fail.
type AppConfig struct {
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"` // "development" | "production"
	DatabaseURL    string   `yaml:"database_url"`
	ContactsTable  string   `yaml:"contacts_table"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// rawAppConfig accepts the aliased spellings seen across deployments.
type rawAppConfig struct {
	Port               int               `yaml:"port"`
	Env                string            `yaml:"env"`
	NodeEnv            string            `yaml:"node_env"`
	DatabaseURL        string            `yaml:"database_url"`
	DSN                string            `yaml:"dsn"`
	Database           rawDatabaseConfig `yaml:"database"`
	ContactsTable      string            `yaml:"contacts_table"`
	ContactTable       string            `yaml:"contact_table"`
	AllowedOrigins     []string          `yaml:"allowed_origins"`
	CORSAllowedOrigins []string          `yaml:"cors_allowed_origins"`
}

type rawDatabaseConfig struct {
	URL string `yaml:"url"`
	DSN string `yaml:"dsn"`
}

// Load reads the YAML config at path. A missing file is not an error: the
// service falls back to defaults plus the DATABASE_URL environment variable.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := AppConfig{Port: defaultPort, Env: defaultEnv}

	content, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to env-only configuration
	case err != nil:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		raw := rawAppConfig{}
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
		applyRawAppConfig(&cfg, raw)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}

	return &cfg, nil
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.NodeEnv); v != "" {
		cfg.Env = v
	}

	// database_url | dsn | database.url | database.dsn, last alias wins
	for _, v := range []string{raw.DatabaseURL, raw.DSN, raw.Database.URL, raw.Database.DSN} {
		if v = strings.TrimSpace(v); v != "" {
			cfg.DatabaseURL = v
		}
	}

	if v := strings.TrimSpace(raw.ContactsTable); v != "" {
		cfg.ContactsTable = v
	}
	if v := strings.TrimSpace(raw.ContactTable); v != "" {
		cfg.ContactsTable = v
	}

	switch {
	case raw.AllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	case raw.CORSAllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.CORSAllowedOrigins)
	}

	cfg.Env = normalizeEnv(cfg.Env)
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func normalizeEnv(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod":
		return "production"
	default:
		return "development"
	}
}

// IsDev reports whether the service runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }
