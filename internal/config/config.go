package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything liftlog needs to reach the workout store and
// write its own logs.
type Config struct {
	ServerURL string
	LogDir    string
	LogLevel  string
}

const (
	defaultConfigPath = "~/.config/liftlog/config.toml"
	defaultLogDir     = "~/.local/state/liftlog"
	defaultServerURL  = "127.0.0.1:6942"
	defaultLogLevel   = "info"

	// serverEnvVar overrides the configured store address; it can live in
	// the process environment or a .env file in the working directory.
	serverEnvVar = "LIFTLOG_SERVER_URL"
)

// Load locates and parses the liftlog config, falling back to defaults when
// missing. A LIFTLOG_SERVER_URL environment value (including one loaded from
// a local .env file) wins over the file.
func Load(path string) (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{ServerURL: defaultServerURL, LogDir: defaultLogDir, LogLevel: defaultLogLevel}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.LogDir = mustExpand(defaultLogDir)
			return applyEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ServerURL string `toml:"server_url"`
		LogDir    string `toml:"log_dir"`
		LogLevel  string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.ServerURL = strings.TrimSpace(raw.ServerURL)
	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultServerURL
	}

	cfg.LogDir = strings.TrimSpace(raw.LogDir)
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return applyEnv(cfg), nil
}

// LogPath returns the path to the client's own log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/liftlog.log")
	}
	return filepath.Join(c.LogDir, "liftlog.log")
}

func applyEnv(cfg Config) Config {
	if override := strings.TrimSpace(os.Getenv(serverEnvVar)); override != "" {
		cfg.ServerURL = override
	}
	return cfg
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
