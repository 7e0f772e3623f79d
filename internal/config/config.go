// Package config resolves runtime settings from defaults, an optional TOML
// file and TASKTRACKER_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DBPath        string
	LogFile       string
	LogLevel      string
	LoginDelay    time.Duration
	DueSoonWindow time.Duration
	WatchDueDates bool
	WatchBuffer   int
}

// fileConfig mirrors config.toml. Durations are plain integers so the file
// stays easy to edit by hand.
type fileConfig struct {
	DBPath       *string `toml:"db-path"`
	LogFile      *string `toml:"log-file"`
	LogLevel     *string `toml:"log-level"`
	LoginDelayMS *int    `toml:"login-delay-ms"`
	DueSoonHours *int    `toml:"due-soon-hours"`
	WatchDue     *bool   `toml:"watch-due-dates"`
}

func Default() Config {
	return Config{
		DBPath:        defaultDataPath("tasktracker.db"),
		LogFile:       "",
		LogLevel:      "info",
		LoginDelay:    800 * time.Millisecond,
		DueSoonWindow: 24 * time.Hour,
		WatchDueDates: true,
		WatchBuffer:   16,
	}
}

// DefaultPath is ~/.config/tasktracker/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tasktracker", "config.toml"), nil
}

// Load reads path over base and then applies environment overrides. A
// missing file is not an error.
func Load(path string, base Config) (Config, error) {
	cfg := base
	if strings.TrimSpace(path) != "" {
		fromFile, err := loadFile(path, cfg)
		if err != nil {
			return Config{}, err
		}
		cfg = fromFile
	}
	return FromEnv(cfg), nil
}

func loadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return base, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if _, err := toml.Decode(string(data), &fc); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg := base
	if fc.DBPath != nil {
		cfg.DBPath = *fc.DBPath
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LoginDelayMS != nil && *fc.LoginDelayMS >= 0 {
		cfg.LoginDelay = time.Duration(*fc.LoginDelayMS) * time.Millisecond
	}
	if fc.DueSoonHours != nil && *fc.DueSoonHours > 0 {
		cfg.DueSoonWindow = time.Duration(*fc.DueSoonHours) * time.Hour
	}
	if fc.WatchDue != nil {
		cfg.WatchDueDates = *fc.WatchDue
	}
	return cfg, nil
}

func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TASKTRACKER_DB")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKTRACKER_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKTRACKER_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v, ok := getEnvInt("TASKTRACKER_LOGIN_DELAY_MS"); ok && v >= 0 {
		cfg.LoginDelay = time.Duration(v) * time.Millisecond
	}
	if v, ok := getEnvInt("TASKTRACKER_DUE_SOON_HOURS"); ok && v > 0 {
		cfg.DueSoonWindow = time.Duration(v) * time.Hour
	}
	if v, ok := getEnvBool("TASKTRACKER_WATCH_DUE"); ok {
		cfg.WatchDueDates = v
	}
	return cfg
}

func defaultDataPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "tasktracker", name)
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
