// Package store persists uploads and ranked lead snapshots on the local
// filesystem: raw uploads under uploads/, processed snapshots under
// processed/, and current.json as the active dataset.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"lead-insights-go/internal/types"
)

type Store struct {
	dataDir      string
	uploadsDir   string
	processedDir string
	currentFile  string
}

func New(dataDir string) (*Store, error) {
	s := &Store{
		dataDir:      dataDir,
		uploadsDir:   filepath.Join(dataDir, "uploads"),
		processedDir: filepath.Join(dataDir, "processed"),
		currentFile:  filepath.Join(dataDir, "current.json"),
	}
	for _, dir := range []string{s.dataDir, s.uploadsDir, s.processedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return s, nil
}

// Timestamp returns the compact timestamp used in stored filenames.
func Timestamp() string {
	return time.Now().UTC().Format("20060102_150405")
}

// SaveUpload writes the raw uploaded file under uploads/ and returns the
// stored filename.
func (s *Store) SaveUpload(data []byte, originalName, timestamp string) (string, error) {
	filename := fmt.Sprintf("upload_%s%s", timestamp, filepath.Ext(originalName))
	if err := os.WriteFile(filepath.Join(s.uploadsDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return filename, nil
}

// SaveProcessed writes a ranked snapshot under processed/ and returns the
// stored filename.
func (s *Store) SaveProcessed(leads []types.ScoredLead, timestamp string) (string, error) {
	filename := fmt.Sprintf("leads_%s.json", timestamp)
	data, err := json.MarshalIndent(leads, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode leads: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.processedDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("save processed: %w", err)
	}
	return filename, nil
}

// SetCurrent replaces the active dataset.
func (s *Store) SetCurrent(leads []types.ScoredLead) error {
	data, err := json.MarshalIndent(leads, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leads: %w", err)
	}
	if err := os.WriteFile(s.currentFile, data, 0o644); err != nil {
		return fmt.Errorf("save current: %w", err)
	}
	return nil
}

// Current loads the active dataset. A missing file is not an error: it is
// an empty dataset.
func (s *Store) Current() ([]types.ScoredLead, error) {
	data, err := os.ReadFile(s.currentFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read current: %w", err)
	}
	var leads []types.ScoredLead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("parse current: %w", err)
	}
	return leads, nil
}

// ListProcessed returns processed snapshot filenames, newest first.
func (s *Store) ListProcessed() ([]string, error) {
	return s.list(s.processedDir, ".json")
}

// ListUploads returns uploaded filenames, newest first.
func (s *Store) ListUploads() ([]string, error) {
	return s.list(s.uploadsDir, ".xlsx", ".xls", ".json")
}

func (s *Store) list(dir string, exts ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, ext := range exts {
			if strings.HasSuffix(strings.ToLower(e.Name()), ext) {
				names = append(names, e.Name())
				break
			}
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}
