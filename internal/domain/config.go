package domain

import "fmt"

// DefaultHistoryLimit is how many evaluations are kept when the config does
// not say otherwise.
const DefaultHistoryLimit = 50

// Config holds data-directory configuration loaded from .growthcheck.yaml.
type Config struct {
	Calories  CaloriePolicy   `yaml:"calories"  json:"calories"`
	History   HistoryConfig   `yaml:"history"   json:"history"`
	Reference ReferenceConfig `yaml:"reference" json:"reference,omitempty"`
}

// HistoryConfig controls the evaluation history.
type HistoryConfig struct {
	Limit int `yaml:"limit" json:"limit"`
}

// ReferenceConfig points at WHO BMI-for-age files that override the bundled
// growth reference. Relative paths resolve against the data directory.
type ReferenceConfig struct {
	Boys  string `yaml:"boys,omitempty"  json:"boys,omitempty"`
	Girls string `yaml:"girls,omitempty" json:"girls,omitempty"`
}

// IsZero reports whether no override file is configured.
func (r ReferenceConfig) IsZero() bool {
	return r.Boys == "" && r.Girls == ""
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Calories: DefaultCaloriePolicy(),
		History:  HistoryConfig{Limit: DefaultHistoryLimit},
	}
}

// Validate checks the config for values that cannot be honoured.
func (c Config) Validate() error {
	if err := c.Calories.Validate(); err != nil {
		return err
	}
	if c.History.Limit < 1 || c.History.Limit > 1000 {
		return fmt.Errorf("history.limit = %d (must be between 1 and 1000)", c.History.Limit)
	}
	return nil
}
