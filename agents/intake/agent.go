package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mission-scanner/internal/models"
	"mission-scanner/shared/ai"
	"mission-scanner/shared/airports"
	"mission-scanner/shared/config"
	"mission-scanner/shared/scheduler"
	"mission-scanner/shared/secrets"
	"mission-scanner/shared/security"
	"mission-scanner/shared/storage"
)

// How long a processed document stays in the tracker before its entry may
// be re-evaluated. Intake files are normally removed after archiving, so
// this only matters for files that could not be archived.
const trackerRetention = 30 * 24 * time.Hour

// SweepMetrics represents the metrics collected during one intake sweep
type SweepMetrics struct {
	DocumentsFound     int `json:"documents_found"`
	DocumentsProcessed int `json:"documents_processed"`
	LegsExtracted      int `json:"legs_extracted"`
	NeedsReview        int `json:"needs_review"`
	Failures           int `json:"failures"`
}

// GetSummary implements the scheduler.Metrics interface
func (m SweepMetrics) GetSummary() string {
	if m.DocumentsFound == 0 {
		return "no new documents in intake"
	}
	return fmt.Sprintf("%d documents processed (%d legs, %d flagged for review, %d failed)",
		m.DocumentsProcessed, m.LegsExtracted, m.NeedsReview, m.Failures)
}

// extractor is the pipeline seam; tests drop in a stub.
type extractor interface {
	ProcessDocument(ctx context.Context, documentID string, image []byte) (*models.ExtractionResult, error)
}

// Agent sweeps the intake directory for new itinerary scans, runs each
// through the extraction pipeline, writes the structured result, and
// archives the original document encrypted.
type Agent struct {
	config    *config.Config
	audit     *security.AuditLog
	directory *airports.Directory
	cipher    *secrets.FieldCipher
	tracker   *storage.DocumentTracker
	extractor extractor
}

func New(cfg *config.Config, audit *security.AuditLog) *Agent {
	return &Agent{
		config: cfg,
		audit:  audit,
	}
}

func (a *Agent) Name() string {
	return "Itinerary Intake Agent"
}

func (a *Agent) Initialize() error {
	log.Printf("Initializing %s...", a.Name())

	a.directory = airports.NewDirectory()

	cipher, err := secrets.NewFieldCipher(a.config.Security.EncryptionKey)
	if err != nil {
		return fmt.Errorf("encryption configuration error: %w", err)
	}
	if err := cipher.SelfTest(); err != nil {
		return fmt.Errorf("encryption configuration error: %w", err)
	}
	a.cipher = cipher
	log.Println("Field cipher initialized and self-tested")

	tracker, err := storage.NewDocumentTracker(a.config.Scanner.DataDir, trackerRetention)
	if err != nil {
		return fmt.Errorf("failed to initialize document tracker: %w", err)
	}
	a.tracker = tracker

	if a.extractor == nil {
		ext, err := ai.NewExtractor(a.config, a.directory, a.audit)
		if err != nil {
			return fmt.Errorf("failed to initialize extractor: %w", err)
		}
		a.extractor = ext
		log.Println("Extraction pipeline initialized")
	}

	for _, dir := range []string{a.config.Scanner.IntakeDir, a.config.Scanner.ArchiveDir, a.config.Scanner.OutputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	a.audit.LogEvent(security.EventAgentStart, "", true,
		fmt.Sprintf("intake agent initialized, %d documents tracked", a.tracker.ProcessedCount()),
		security.SeverityLow)

	return nil
}

func (a *Agent) RunOnce(ctx context.Context, events *scheduler.AgentEvents) error {
	startTime := time.Now()
	metrics := SweepMetrics{}

	entries, err := os.ReadDir(a.config.Scanner.IntakeDir)
	if err != nil {
		err = fmt.Errorf("failed to read intake directory: %w", err)
		if events != nil && events.OnCriticalFailure != nil {
			events.OnCriticalFailure(err, time.Since(startTime))
		}
		return err
	}

	var firstErr error
	for _, entry := range entries {
		if entry.IsDir() || !isImageFile(entry.Name()) {
			continue
		}
		metrics.DocumentsFound++

		if err := a.processFile(ctx, entry.Name(), &metrics); err != nil {
			metrics.Failures++
			if firstErr == nil {
				firstErr = err
			}
			log.Printf("Failed to process %s: %v", entry.Name(), err)
		}
	}

	duration := time.Since(startTime)
	if firstErr != nil && events != nil && events.OnPartialFailure != nil {
		events.OnPartialFailure(firstErr, duration)
	}
	if events != nil && events.OnSuccess != nil {
		events.OnSuccess(metrics, duration)
	}
	return nil
}

func (a *Agent) processFile(ctx context.Context, name string, metrics *SweepMetrics) error {
	path := filepath.Join(a.config.Scanner.IntakeDir, name)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", name, err)
	}
	if info.Size() > a.config.Scanner.MaxImageBytes {
		a.audit.LogEvent(security.EventValidationFailure, "", false,
			fmt.Sprintf("document %s exceeds size cap (%d bytes)", name, info.Size()),
			security.SeverityLow)
		return fmt.Errorf("%s exceeds the %d byte size cap", name, a.config.Scanner.MaxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	// Content-derived ID keeps audit entries and outputs stable when the
	// same scan is dropped in twice under different names.
	documentID := secrets.HashSensitive(data)[:16]
	if a.tracker.IsProcessed(documentID) {
		log.Printf("Skipping already-processed document %s (%s)", name, documentID)
		return nil
	}

	result, err := a.extractor.ProcessDocument(ctx, documentID, data)
	if err != nil {
		if code, ok := ai.ReasonOf(err); ok && code == ai.ReasonInferenceUnavailable {
			// Transient: leave untracked so the next sweep retries.
			return err
		}
		// The document itself is unusable; remember it so it is not
		// re-submitted (and re-logged) every sweep.
		if markErr := a.tracker.MarkProcessed(documentID); markErr != nil {
			log.Printf("Failed to track rejected document %s: %v", documentID, markErr)
		}
		return err
	}

	if err := a.writeResult(documentID, result); err != nil {
		return err
	}
	if err := a.archiveDocument(documentID, name, path, data); err != nil {
		return err
	}
	if err := a.tracker.MarkProcessed(documentID); err != nil {
		return fmt.Errorf("failed to track document %s: %w", documentID, err)
	}

	metrics.DocumentsProcessed++
	metrics.LegsExtracted += len(result.Legs)
	if result.NeedsReview {
		metrics.NeedsReview++
		log.Printf("Document %s extracted with low confidence %.2f - flagged for human verification",
			documentID, result.Confidence)
	}
	return nil
}

// writeResult hands the accepted legs to whatever persistence sits behind
// the output directory.
func (a *Agent) writeResult(documentID string, result *models.ExtractionResult) error {
	outPath := filepath.Join(a.config.Scanner.OutputDir, documentID+".json")

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create result file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to write result for %s: %w", documentID, err)
	}
	return nil
}

// archiveDocument encrypts the original scan into the archive directory and
// removes it from intake.
func (a *Agent) archiveDocument(documentID, name, path string, data []byte) error {
	payload, err := a.cipher.EncryptDocument(data)
	if err != nil {
		a.audit.LogEvent(security.EventDocumentEncrypted, documentID, false,
			fmt.Sprintf("failed to encrypt %s: %v", name, err), security.SeverityHigh)
		return fmt.Errorf("failed to encrypt %s: %w", name, err)
	}

	archivePath := filepath.Join(a.config.Scanner.ArchiveDir, documentID+".enc.json")
	file, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(payload); err != nil {
		return fmt.Errorf("failed to write archive for %s: %w", documentID, err)
	}

	a.audit.LogEvent(security.EventDocumentEncrypted, documentID, true,
		fmt.Sprintf("document %s encrypted to archive", name), security.SeverityLow)

	if err := os.Remove(path); err != nil {
		log.Printf("Failed to remove %s from intake after archiving: %v", name, err)
	}
	return nil
}

// RetrieveArchived decrypts an archived scan back to its original bytes.
// A failed decrypt is recorded as a high-severity audit event and returned
// to the caller; it never takes the agent down.
func (a *Agent) RetrieveArchived(documentID string) ([]byte, error) {
	archivePath := filepath.Join(a.config.Scanner.ArchiveDir, documentID+".enc.json")
	raw, err := os.ReadFile(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive for %s: %w", documentID, err)
	}

	var payload secrets.EncryptedPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		a.audit.LogEvent(security.EventDecryptionFailure, documentID, false,
			"archive payload is not valid JSON", security.SeverityHigh)
		return nil, fmt.Errorf("archive for %s is malformed: %w", documentID, err)
	}

	data, err := a.cipher.DecryptDocument(payload)
	if err != nil {
		a.audit.LogEvent(security.EventDecryptionFailure, documentID, false,
			fmt.Sprintf("failed to decrypt archived document: %v", err), security.SeverityHigh)
		return nil, err
	}

	a.audit.LogEvent(security.EventDocumentAccessed, documentID, true,
		"archived document retrieved", security.SeverityLow)
	return data, nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".heic":
		return true
	}
	return false
}
