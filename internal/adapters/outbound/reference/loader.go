// Package reference loads the growth reference table, merging WHO
// BMI-for-age files configured in .growthcheck.yaml over the bundled curves.
package reference

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/abdidvp/growthcheck/internal/domain"
	"github.com/abdidvp/growthcheck/internal/domain/growth"
)

// Loader implements domain.ReferenceLoader. Tables built from files are
// cached per resolved path pair and rebuilt when either file changes on disk,
// so a long-running server picks up edited reference files.
type Loader struct {
	mu     sync.Mutex
	tables map[[2]string]cached
}

type cached struct {
	stamps [2]stamp
	table  *growth.Table
}

var sexes = [2]growth.Sex{growth.Male, growth.Female}

// stamp identifies one version of a reference file.
type stamp struct {
	modTime time.Time
	size    int64
}

// New creates a Loader.
func New() *Loader {
	return &Loader{tables: make(map[[2]string]cached)}
}

// Load returns growth.Default() when no files are configured. Otherwise each
// configured file is merged over the bundled curve of its sex and the result
// must still cover every month.
func (l *Loader) Load(dataDir string, cfg domain.ReferenceConfig) (*growth.Table, error) {
	if cfg.IsZero() {
		return growth.Default(), nil
	}

	key := [2]string{resolve(dataDir, cfg.Boys), resolve(dataDir, cfg.Girls)}
	var stamps [2]stamp
	for i, path := range key {
		st, err := stat(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s reference: %w", sexes[i], err)
		}
		stamps[i] = st
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.tables[key]; ok && c.stamps == stamps {
		return c.table, nil
	}

	male, err := curve(sexes[0], key[0])
	if err != nil {
		return nil, err
	}
	female, err := curve(sexes[1], key[1])
	if err != nil {
		return nil, err
	}
	t, err := growth.NewTable(male, female)
	if err != nil {
		return nil, err
	}
	l.tables[key] = cached{stamps: stamps, table: t}
	return t, nil
}

func stat(path string) (stamp, error) {
	if path == "" {
		return stamp{}, nil
	}
	fi, err := os.Stat(path)
	if err != nil {
		return stamp{}, err
	}
	return stamp{modTime: fi.ModTime(), size: fi.Size()}, nil
}

func curve(sex growth.Sex, path string) ([]growth.Row, error) {
	bundled := growth.BundledRows(sex)
	if path == "" {
		return bundled, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s reference: %w", sex, err)
	}
	defer f.Close()

	rows, err := growth.ParseRows(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return growth.Merge(bundled, rows), nil
}

func resolve(dataDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dataDir, path)
}
