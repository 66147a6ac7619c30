package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/abdidvp/growthcheck/internal/domain"
)

const historyFile = "history/evaluations.json"

// FileHistory implements domain.EvaluationHistory using JSON file storage.
// Entries are kept newest first. One FileHistory serializes its own reads and
// writes, so the HTTP and MCP servers can share it across requests.
type FileHistory struct {
	mu sync.Mutex
}

func New() *FileHistory {
	return &FileHistory{}
}

// Append stores entry at the front and drops the oldest entries beyond limit.
// A limit below one keeps everything.
func (h *FileHistory) Append(dataDir string, entry domain.HistoryEntry, limit int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := load(dataDir)
	if err != nil {
		return err
	}

	entries = append([]domain.HistoryEntry{entry}, entries...)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return write(dataDir, entries)
}

func (h *FileHistory) Load(dataDir string) ([]domain.HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return load(dataDir)
}

// Clear removes the history file.
func (h *FileHistory) Clear(dataDir string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	err := os.Remove(filepath.Join(dataDir, historyFile))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func load(dataDir string) ([]domain.HistoryEntry, error) {
	fp := filepath.Join(dataDir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// write replaces the history file through a temporary sibling so readers never
// see a partially written file.
func write(dataDir string, entries []domain.HistoryEntry) error {
	fp := filepath.Join(dataDir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fp), "evaluations-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fp)
}
