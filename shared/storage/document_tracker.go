package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DocumentTracker keeps a persistent record of processed document IDs so a
// document is extracted (and audit-logged) at most once, even across
// restarts or an abandoned submission being retried.
type DocumentTracker struct {
	filePath     string
	processedIDs map[string]time.Time
	mu           sync.RWMutex
	maxAge       time.Duration
}

// TrackedDocument represents a document that has been processed
type TrackedDocument struct {
	DocumentID  string    `json:"document_id"`
	ProcessedAt time.Time `json:"processed_at"`
}

// NewDocumentTracker creates a tracker backed by a JSON file in dataDir.
func NewDocumentTracker(dataDir string, maxAge time.Duration) (*DocumentTracker, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	tracker := &DocumentTracker{
		filePath:     filepath.Join(dataDir, "processed_documents.json"),
		processedIDs: make(map[string]time.Time),
		maxAge:       maxAge,
	}

	if err := tracker.load(); err != nil {
		return nil, fmt.Errorf("failed to load document tracker data: %w", err)
	}

	tracker.cleanup()

	return tracker, nil
}

// IsProcessed checks whether a document ID was processed recently.
func (dt *DocumentTracker) IsProcessed(documentID string) bool {
	dt.mu.RLock()
	defer dt.mu.RUnlock()

	processedAt, exists := dt.processedIDs[documentID]
	if !exists {
		return false
	}
	return time.Since(processedAt) < dt.maxAge
}

// MarkProcessed records a document ID as processed.
func (dt *DocumentTracker) MarkProcessed(documentID string) error {
	dt.mu.Lock()
	defer dt.mu.Unlock()

	dt.processedIDs[documentID] = time.Now()
	return dt.save()
}

// ProcessedCount returns the number of tracked documents.
func (dt *DocumentTracker) ProcessedCount() int {
	dt.mu.RLock()
	defer dt.mu.RUnlock()
	return len(dt.processedIDs)
}

// cleanup removes entries older than maxAge
func (dt *DocumentTracker) cleanup() {
	cutoff := time.Now().Add(-dt.maxAge)

	for documentID, processedAt := range dt.processedIDs {
		if processedAt.Before(cutoff) {
			delete(dt.processedIDs, documentID)
		}
	}
}

func (dt *DocumentTracker) load() error {
	file, err := os.Open(dt.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// First run, start empty
			return nil
		}
		return fmt.Errorf("failed to open tracker file: %w", err)
	}
	defer file.Close()

	var tracked []TrackedDocument
	if err := json.NewDecoder(file).Decode(&tracked); err != nil {
		return fmt.Errorf("failed to decode tracker data: %w", err)
	}

	for _, td := range tracked {
		dt.processedIDs[td.DocumentID] = td.ProcessedAt
	}

	return nil
}

func (dt *DocumentTracker) save() error {
	var tracked []TrackedDocument
	for documentID, processedAt := range dt.processedIDs {
		tracked = append(tracked, TrackedDocument{
			DocumentID:  documentID,
			ProcessedAt: processedAt,
		})
	}

	file, err := os.Create(dt.filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tracked)
}
