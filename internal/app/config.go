package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to upper-cased config keys when reading the
// environment, e.g. PRIMECOUNT_LOG_LEVEL.
const EnvPrefix = "PRIMECOUNT"

// Config holds runtime wiring options for building the app.
type Config struct {
	Threads  int           `mapstructure:"threads"`   // 0 means host processor count
	Format   string        `mapstructure:"format"`    // text, json or yaml
	LogLevel string        `mapstructure:"log_level"` // logrus level name
	History  HistoryConfig `mapstructure:"history"`
	Publish  PublishConfig `mapstructure:"publish"`
}

// HistoryConfig selects where completed runs are stored. An empty Path
// disables history.
type HistoryConfig struct {
	Path   string `mapstructure:"path"`
	Driver string `mapstructure:"driver"` // json or sqlite
}

// PublishConfig points at a collector. An empty URL disables publishing.
type PublishConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// NewViper returns a viper instance with defaults and environment lookup
// configured.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("threads", 0)
	v.SetDefault("format", "text")
	v.SetDefault("log_level", "warn")
	v.SetDefault("history.path", "")
	v.SetDefault("history.driver", "json")
	v.SetDefault("publish.url", "")
	v.SetDefault("publish.timeout", "5s")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the optional YAML file at path into v and decodes the
// merged settings.
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Publish.Timeout <= 0 {
		return Config{}, errors.New("publish.timeout must be positive")
	}
	return cfg, nil
}
