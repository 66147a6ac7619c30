package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/growthcheck/internal/domain"
)

const fileName = "profile.json"

// Store is a file-based implementation of domain.ProfileStore.
type Store struct{}

// New creates a new file-based profile store.
func New() *Store {
	return &Store{}
}

// Load reads the saved profile. Returns domain.ErrProfileNotFound if none
// exists.
func (s *Store) Load(dataDir string) (*domain.Profile, error) {
	data, err := os.ReadFile(profilePath(dataDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	var p domain.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return &p, nil
}

// Save writes the profile to disk, creating directories as needed.
func (s *Store) Save(dataDir string, p domain.Profile) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(profilePath(dataDir), data, 0644)
}

// Delete removes the profile file.
func (s *Store) Delete(dataDir string) error {
	if err := os.Remove(profilePath(dataDir)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func profilePath(dataDir string) string {
	return filepath.Join(dataDir, fileName)
}
