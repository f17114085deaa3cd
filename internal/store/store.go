package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/embedviz/internal/dataset"
)

// Store persists render runs under a base directory, one directory per
// run with a metadata.json plus any computed trend tables as CSV.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Op        string    `json:"op"`
	Dataset   string    `json:"dataset"`
	Basis     string    `json:"basis,omitempty"`
	Color     string    `json:"color,omitempty"`
	Markers   []string  `json:"markers,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Tables    []string  `json:"tables,omitempty"`
}

// Save writes a run directory and returns its ID.
func (s *Store) Save(meta RunMetadata, tables map[string]*dataset.Table) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Op, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	meta.Tables = names

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	for _, name := range names {
		file, err := os.Create(filepath.Join(runDir, name+".csv"))
		if err != nil {
			return "", err
		}
		err = tables[name].WriteCSV(file)
		file.Close()
		if err != nil {
			return "", err
		}
	}
	return runID, nil
}

// List returns run metadata sorted newest first. Directories without a
// readable metadata.json are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, e.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// Dir returns the directory of a run ID.
func (s *Store) Dir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}
