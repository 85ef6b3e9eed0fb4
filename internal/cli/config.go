package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	griderrors "github.com/mveltman/gridlock/pkg/errors"
)

// Backend names accepted in the config file.
const (
	backendFile   = "file"
	backendRedis  = "redis"
	backendNull   = "null"
	backendMemory = "memory"
	backendMongo  = "mongo"
)

// fileConfig is the on-disk TOML configuration. Every field has a working
// default, so a missing file is not an error.
type fileConfig struct {
	Grid struct {
		Cols      int     `toml:"cols"`
		RowHeight float64 `toml:"row_height"`
		Gap       float64 `toml:"gap"`
	} `toml:"grid"`

	Server struct {
		Addr string `toml:"addr"`
	} `toml:"server"`

	Cache struct {
		Backend   string `toml:"backend"` // file, redis, null
		Dir       string `toml:"dir"`
		RedisAddr string `toml:"redis_addr"`
		RedisDB   int    `toml:"redis_db"`
	} `toml:"cache"`

	Session struct {
		Backend  string `toml:"backend"` // memory, mongo
		MongoURI string `toml:"mongo_uri"`
		TTL      string `toml:"ttl"` // Go duration string, e.g. "5m"
	} `toml:"session"`
}

// sessionTTL parses the configured session TTL, falling back to the store
// default when unset or malformed.
func (fc fileConfig) sessionTTL(fallback time.Duration) time.Duration {
	if fc.Session.TTL == "" {
		return fallback
	}
	d, err := time.ParseDuration(fc.Session.TTL)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// defaultFileConfig returns the configuration used when no file is present.
func defaultFileConfig() fileConfig {
	var fc fileConfig
	fc.Grid.Cols = 12
	fc.Grid.RowHeight = 50
	fc.Grid.Gap = 10
	fc.Server.Addr = ":8080"
	fc.Cache.Backend = backendFile
	fc.Session.Backend = backendMemory
	return fc
}

// configPath returns the default config file path (~/.config/gridlock/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadFileConfig reads the TOML config at path, or the default location when
// path is empty. A missing file yields the defaults; a malformed file is an
// error.
func loadFileConfig(path string) (fileConfig, error) {
	fc := defaultFileConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return fc, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return fc, nil
		}
		return fc, griderrors.Wrap(griderrors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &fc); err != nil {
		return fc, griderrors.Wrap(griderrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return fc, nil
}
