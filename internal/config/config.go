// Package config loads runtime settings from ~/.workstats/config.yaml,
// WORKSTATS_* environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageDiskv  = "diskv"
)

// Config holds runtime settings that are not user preferences.
type Config struct {
	DB             string        `mapstructure:"db"`
	Storage        string        `mapstructure:"storage"`
	DiskvDir       string        `mapstructure:"diskv_dir"`
	Timezone       string        `mapstructure:"timezone"`
	DesktopNotify  bool          `mapstructure:"desktop_notify"`
	Log            bool          `mapstructure:"log"`
	WebhookTimeout time.Duration `mapstructure:"webhook_timeout"`
	ShareDir       string        `mapstructure:"share_dir"`
}

// Default returns the configuration rooted at home.
func Default(home string) Config {
	base := filepath.Join(home, ".workstats")
	return Config{
		DB:             filepath.Join(base, "workstats.db"),
		Storage:        StorageSQLite,
		DiskvDir:       filepath.Join(base, "blobs"),
		DesktopNotify:  false,
		Log:            false,
		WebhookTimeout: 10 * time.Second,
		ShareDir:       filepath.Join(base, "shared"),
	}
}

// Load reads the config file and environment. A missing file or .env is
// not an error.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	_ = godotenv.Load()

	path := os.Getenv("WORKSTATS_CONFIG")
	if path == "" {
		path = filepath.Join(home, ".workstats", "config.yaml")
	}
	return LoadFile(path, home)
}

// LoadFile reads the config at path with defaults rooted at home.
func LoadFile(path, home string) (Config, error) {
	cfg := Default(home)

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("WORKSTATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db", cfg.DB)
	v.SetDefault("storage", cfg.Storage)
	v.SetDefault("diskv_dir", cfg.DiskvDir)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("desktop_notify", cfg.DesktopNotify)
	v.SetDefault("log", cfg.Log)
	v.SetDefault("webhook_timeout", cfg.WebhookTimeout)
	v.SetDefault("share_dir", cfg.ShareDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	if cfg.Storage != StorageDiskv {
		cfg.Storage = StorageSQLite
	}
	cfg.DB = expandHome(cfg.DB, home)
	cfg.DiskvDir = expandHome(cfg.DiskvDir, home)
	cfg.ShareDir = expandHome(cfg.ShareDir, home)
	return cfg, nil
}

// Location returns the configured time zone, or the local zone.
func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

func expandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return p
}
