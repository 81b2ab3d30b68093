package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const appDirName = "daily-planner"

// デフォルト値
const (
	DefaultServerURL = "http://localhost:5002"
	DefaultTimeout   = 10 * time.Second
)

// Config はクライアントの設定です。
type Config struct {
	ServerURL string
	CachePath string
	Timeout   time.Duration
}

// fileConfig は config.toml の内容です。
type fileConfig struct {
	ServerURL string `toml:"server_url"`
	CachePath string `toml:"cache_path"`
	Timeout   string `toml:"timeout"`
}

// DefaultConfig は設定ファイルがない場合の設定を返します。
func DefaultConfig() *Config {
	return &Config{
		ServerURL: DefaultServerURL,
		CachePath: defaultCachePath(),
		Timeout:   DefaultTimeout,
	}
}

// DefaultConfigPath は $XDG_CONFIG_HOME/daily-planner/config.toml を返します。
func DefaultConfigPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), appDirName, "config.toml")
}

func defaultCachePath() string {
	return filepath.Join(xdgDir("XDG_CACHE_HOME", ".cache"), appDirName, "tasks.json")
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fallback
	}
	return filepath.Join(home, fallback)
}

// LoadConfig は path のTOMLを読み込み、デフォルト値に重ねます。
// ファイルが存在しない場合はデフォルト値を返します。
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if raw.ServerURL != "" {
		cfg.ServerURL = raw.ServerURL
	}
	if raw.CachePath != "" {
		cfg.CachePath = raw.CachePath
	}
	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		cfg.Timeout = timeout
	}
	return cfg, nil
}
