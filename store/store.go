// Package store persists the pipeline's output documents as pretty-printed
// JSON files keyed by name, the same files the static dashboard fetches.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Document names produced by the pipeline.
const (
	DocAssets         = "assets.json"
	DocStatistics     = "statistics.json"
	DocInfraProjects  = "infra-projects.json"
	DocUpcomingAssets = "upcoming-assets.json"
	DocRisks          = "risks.json"
	DocBudget         = "budget.json"
	DocSyncInfo       = "sync-info.json"
	DocDashboard      = "dashboard-data.json"
)

// Store is a key→JSON blob store backed by a directory.
type Store struct {
	Dir string
	mu  sync.Mutex
}

// New creates the data directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &Store{Dir: dir}, nil
}

// WriteDocument marshals v with two-space indentation and writes it under
// name, replacing any previous version.
func (s *Store) WriteDocument(name string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// ReadDocument unmarshals the document under name into out.
func (s *Store) ReadDocument(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// Exists reports whether a document is present.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.Dir, name))
	return err == nil
}
