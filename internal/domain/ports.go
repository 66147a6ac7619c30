package domain

import "github.com/abdidvp/growthcheck/internal/domain/growth"

// ConfigLoader reads the configuration of a data directory.
type ConfigLoader interface {
	Load(dataDir string) (Config, error)
}

// ReferenceLoader builds the growth reference table for a configuration.
type ReferenceLoader interface {
	Load(dataDir string, cfg ReferenceConfig) (*growth.Table, error)
}

// EvaluationHistory persists evaluations newest first.
type EvaluationHistory interface {
	Append(dataDir string, entry HistoryEntry, limit int) error
	Load(dataDir string) ([]HistoryEntry, error)
	Clear(dataDir string) error
}

// ProfileStore persists the single saved profile of a data directory.
type ProfileStore interface {
	Load(dataDir string) (*Profile, error)
	Save(dataDir string, p Profile) error
	Delete(dataDir string) error
}
