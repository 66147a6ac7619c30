package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/growthcheck/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the data directory.
const FileName = ".growthcheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .growthcheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .growthcheck.yaml from dataDir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dataDir string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	// Keys absent from the file keep their default values.
	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

// Write stores cfg as dataDir/.growthcheck.yaml, creating the directory.
func (l *YAMLLoader) Write(dataDir string, cfg domain.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dataDir, FileName), data, 0644)
}
