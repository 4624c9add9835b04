package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultModelsPath      = "/data/models.json"
	defaultSnapshotTTL     = 24 * time.Hour
	defaultRebuildDebounce = 300 * time.Millisecond
)

type Config struct {
	config *viper.Viper
}

func Load() (*Config, error) {

	env := os.Getenv(keyEnv)
	if len(env) == 0 {
		env = envLocal
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetPort() string {
	port := c.config.GetString("PORT")
	if len(port) == 0 {
		port = c.config.GetString("server.port")
	}

	return port
}

// GetBaseURL returns the origin site content is fetched from.
func (c *Config) GetBaseURL() string {
	baseURL := c.config.GetString("SOURCES_BASE_URL")
	if len(baseURL) == 0 {
		baseURL = c.config.GetString("sources.base_url")
	}

	return baseURL
}

// GetModelsPath returns the path of the model-data JSON resource, relative to
// the base URL.
func (c *Config) GetModelsPath() string {
	modelsPath := c.config.GetString("MODELS_PATH")
	if len(modelsPath) == 0 {
		modelsPath = c.config.GetString("sources.models_path")
	}
	if len(modelsPath) == 0 {
		modelsPath = defaultModelsPath
	}

	return modelsPath
}

func (c *Config) GetSnapshotPath() string {
	snapshotPath := c.config.GetString("SNAPSHOT_PATH")
	if len(snapshotPath) == 0 {
		snapshotPath = c.config.GetString("database.snapshot_path")
	}

	return snapshotPath
}

// GetSnapshotTTL returns how long a persisted index snapshot is considered
// fresh enough to serve without refetching the site.
func (c *Config) GetSnapshotTTL() time.Duration {
	ttl := c.config.GetDuration("SNAPSHOT_TTL")
	if ttl == 0 {
		ttl = c.config.GetDuration("index.snapshot_ttl")
	}
	if ttl == 0 {
		ttl = defaultSnapshotTTL
	}

	return ttl
}

// GetRebuildDebounce returns the quiet interval over which rebuild requests
// are coalesced.
func (c *Config) GetRebuildDebounce() time.Duration {
	debounceInterval := c.config.GetDuration("REBUILD_DEBOUNCE")
	if debounceInterval == 0 {
		debounceInterval = c.config.GetDuration("index.rebuild_debounce")
	}
	if debounceInterval == 0 {
		debounceInterval = defaultRebuildDebounce
	}

	return debounceInterval
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
