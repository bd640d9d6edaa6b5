package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
)

// ProjectConfigFile is the name of the project-level config file.
const ProjectConfigFile = "graphsite.yaml"

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. Project config file (path, or graphsite.yaml if path is empty)
// 3. CLI overrides (applied by the caller)
func (l *Loader) Load(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		path = ProjectConfigFile
	}

	fileConfig, err := LoadFromFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == ProjectConfigFile {
			l.logger.Debug("No project config found, using defaults")
		} else {
			return nil, fmt.Errorf("load config: %w", err)
		}
	} else {
		l.logger.Debug("Loaded project config", slog.String("path", path))
		config.Merge(fileConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
