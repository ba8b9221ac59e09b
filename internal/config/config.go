// Package config resolves runtime settings from defaults, an optional YAML
// file and CLBP_* environment variables. Command-line flags are applied on
// top by the cmd package.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/clbp/clbp/internal/assessment"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/store"
)

// Backend selects where progress and preferences are stored.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)

// Environment variables read by Load.
const (
	EnvDB        = "CLBP_DB"
	EnvBackend   = "CLBP_BACKEND"
	EnvRedisAddr = "CLBP_REDIS_ADDR"
	EnvLogLevel  = "CLBP_LOG_LEVEL"
)

var ErrUnknownBackend = errors.New("unknown backend")

// Config holds every runtime setting.
type Config struct {
	Backend     Backend       `yaml:"backend"`
	DBPath      string        `yaml:"db"`
	RedisAddr   string        `yaml:"redisAddr"`
	RedisPrefix string        `yaml:"redisPrefix"`
	QuietPeriod time.Duration `yaml:"autosaveQuietPeriod"`
	LogLevel    string        `yaml:"logLevel"`
	LogFile     string        `yaml:"logFile"`
	Language    string        `yaml:"language"`
}

// DefaultConfig returns the built-in defaults. DBPath and LogFile are left
// empty and resolved to their XDG locations when used.
func DefaultConfig() Config {
	return Config{
		Backend:     BackendSQLite,
		RedisAddr:   "localhost:6379",
		RedisPrefix: store.DefaultRedisPrefix,
		QuietPeriod: assessment.DefaultConfig().QuietPeriod,
		LogLevel:    "info",
		Language:    string(i18n.Default),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/clbp/config.yaml, falling back to
// ~/.config/clbp/config.yaml.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "get home dir")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "clbp", "config.yaml"), nil
}

// Load builds a Config from the defaults, the YAML file at path and the
// environment. An empty path means the default location, which may be
// absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	cfg.applyEnv(os.LookupEnv)
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDB); ok && v != "" {
		c.DBPath = v
	}
	if v, ok := lookup(EnvBackend); ok && v != "" {
		c.Backend = Backend(strings.ToLower(v))
	}
	if v, ok := lookup(EnvRedisAddr); ok && v != "" {
		c.RedisAddr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendRedis:
	default:
		return errors.Wrapf(ErrUnknownBackend, "%q (want sqlite or redis)", c.Backend)
	}
	if _, err := i18n.ParseLanguage(c.Language); err != nil {
		return errors.Wrap(err, "language")
	}
	if c.QuietPeriod < 0 {
		return errors.New("autosaveQuietPeriod must not be negative")
	}
	return nil
}

// ResolveDBPath returns DBPath, or the default database location, and makes
// sure its directory exists.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	return store.DefaultDBPath()
}

// Assessment returns the progress-store settings.
func (c Config) Assessment() assessment.Config {
	ac := assessment.DefaultConfig()
	if c.QuietPeriod > 0 {
		ac.QuietPeriod = c.QuietPeriod
	}
	return ac
}
