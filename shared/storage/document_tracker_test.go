package storage

import (
	"testing"
	"time"
)

func TestDocumentTracker(t *testing.T) {
	dir := t.TempDir()

	tracker, err := NewDocumentTracker(dir, time.Hour)
	if err != nil {
		t.Fatalf("NewDocumentTracker: %v", err)
	}

	if tracker.IsProcessed("doc-1") {
		t.Error("fresh tracker should not know doc-1")
	}

	if err := tracker.MarkProcessed("doc-1"); err != nil {
		t.Fatalf("MarkProcessed: %v", err)
	}
	if !tracker.IsProcessed("doc-1") {
		t.Error("doc-1 should be tracked after marking")
	}
	if tracker.ProcessedCount() != 1 {
		t.Errorf("ProcessedCount = %d, want 1", tracker.ProcessedCount())
	}
}

func TestDocumentTrackerPersistence(t *testing.T) {
	dir := t.TempDir()

	first, err := NewDocumentTracker(dir, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.MarkProcessed("doc-a"); err != nil {
		t.Fatal(err)
	}
	if err := first.MarkProcessed("doc-b"); err != nil {
		t.Fatal(err)
	}

	// A new tracker over the same directory sees the saved state.
	second, err := NewDocumentTracker(dir, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if !second.IsProcessed("doc-a") || !second.IsProcessed("doc-b") {
		t.Error("reloaded tracker lost entries")
	}
	if second.ProcessedCount() != 2 {
		t.Errorf("ProcessedCount = %d, want 2", second.ProcessedCount())
	}
}

func TestDocumentTrackerExpiry(t *testing.T) {
	dir := t.TempDir()

	tracker, err := NewDocumentTracker(dir, time.Nanosecond)
	if err != nil {
		t.Fatal(err)
	}
	if err := tracker.MarkProcessed("doc-old"); err != nil {
		t.Fatal(err)
	}

	time.Sleep(time.Millisecond)
	if tracker.IsProcessed("doc-old") {
		t.Error("entry beyond maxAge should not count as processed")
	}
}
