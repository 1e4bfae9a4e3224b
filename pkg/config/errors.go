package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrSettingsMissing = errors.New("please configure organization settings first")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("adogh configuration not found. Run 'adogh init' to initialize")
)
