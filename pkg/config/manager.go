package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lerenn/adogh/pkg/fs"
	"github.com/lerenn/adogh/pkg/redirect"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fsInstance fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fsInstance,
		configPath: configPath,
	}
}

// DefaultConfigPath returns ~/.adogh/config.yaml.
func DefaultConfigPath(fsInstance fs.FS) string {
	homeDir, err := fsInstance.GetHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".adogh", "config.yaml")
}

// GetConfig loads the stored configuration from the embedded config path.
// Environment overrides are not applied, see Config.WithEnv. Validation is
// left to callers since an unconfigured store is a normal state.
func (c *realManager) GetConfig() (Config, error) {
	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return Config{}, err
	}

	exists, err := c.fs.Exists(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, path)
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	return config.Normalize(), nil
}

// GetConfigWithFallback loads the configuration, falling back to the default when missing.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if errors.Is(err, ErrConfigNotInitialized) {
		return c.DefaultConfig(), nil
	}
	return config, err
}

// SaveConfig validates and saves configuration, replacing any previous file.
func (c *realManager) SaveConfig(config Config) error {
	config = config.Normalize()
	if err := config.Validate(); err != nil {
		return err
	}

	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	unlock, err := c.fs.FileLock(path)
	if err != nil {
		return fmt.Errorf("failed to lock configuration file: %w", err)
	}
	defer unlock()

	if err := c.fs.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration: no organizations, pulls list target.
func (c *realManager) DefaultConfig() Config {
	return Config{
		PullRequestTarget: string(redirect.PullRequestTargetPulls),
	}
}
