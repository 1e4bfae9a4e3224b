// Package cli provides common configuration and utility functions for the adogh CLI.
package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/lerenn/adogh/pkg/config"
	"github.com/lerenn/adogh/pkg/fs"
	"github.com/lerenn/adogh/pkg/logger"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// GetConfigPath returns the config file path used by the CLI.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return config.DefaultConfigPath(fs.NewFS())
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(fs.NewFS(), GetConfigPath())
}

// NewLogger returns the logger matching the verbosity flags.
func NewLogger() logger.Logger {
	if Verbose && !Quiet {
		return logger.NewVerboseLogger()
	}
	return logger.NewNoopLogger()
}

// EnvFilePath returns the .env file read next to the config file.
func EnvFilePath() string {
	return filepath.Join(filepath.Dir(GetConfigPath()), ".env")
}

// LoadEnvFile exports the variables of the .env file next to the config
// file (ADO_TOKEN, GITHUB_TOKEN, organization overrides). Variables already
// set in the environment win. A missing file is not an error.
func LoadEnvFile() error {
	err := godotenv.Load(EnvFilePath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
