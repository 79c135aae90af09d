package intake

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"mission-scanner/internal/models"
	"mission-scanner/shared/ai"
	"mission-scanner/shared/config"
	"mission-scanner/shared/secrets"
	"mission-scanner/shared/security"
)

const testEncryptionKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

type stubExtractor struct {
	calls  int
	result *models.ExtractionResult
	err    error
}

func (s *stubExtractor) ProcessDocument(ctx context.Context, documentID string, image []byte) (*models.ExtractionResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	return &config.Config{
		AI: config.AIConfig{GeminiAPIKey: "unused", Model: "unused", TimeoutSeconds: 5, MinConfidence: 0.7},
		Scanner: config.ScannerConfig{
			IntakeDir:     filepath.Join(root, "intake"),
			ArchiveDir:    filepath.Join(root, "archive"),
			OutputDir:     filepath.Join(root, "extracted"),
			DataDir:       filepath.Join(root, "data"),
			MaxImageBytes: 1 << 20,
		},
		Security: config.SecurityConfig{EncryptionKey: testEncryptionKey, MaxAuditEvents: 100},
	}
}

func newTestAgent(t *testing.T, stub *stubExtractor) (*Agent, *security.AuditLog) {
	t.Helper()
	cfg := testConfig(t)
	audit := security.NewAuditLog(cfg.Security.MaxAuditEvents)
	agent := New(cfg, audit)
	agent.extractor = stub
	if err := agent.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return agent, audit
}

func dropScan(t *testing.T, agent *Agent, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(agent.config.Scanner.IntakeDir, name), data, 0644); err != nil {
		t.Fatal(err)
	}
}

func oneLegResult() *models.ExtractionResult {
	distance := 4455
	return &models.ExtractionResult{
		Legs: []models.FlightLeg{{
			DepartureIcao: "KTCM", DepartureName: "McChord Field",
			ArrivalIcao: "ETAR", ArrivalName: "Ramstein Air Base",
			DepartureTime: "1720", ArrivalTime: "0310+1",
			Duration: "9.5", MissionNumber: "PMZF1301C147",
			Pax: 12, CargoWeightLbs: 73900,
			DistanceNm: &distance,
		}},
		FormType:   "AMC IMI 170",
		Confidence: 0.92,
	}
}

func TestSweepProcessesNewScan(t *testing.T) {
	stub := &stubExtractor{result: oneLegResult()}
	agent, audit := newTestAgent(t, stub)

	scan := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02, 0x03}
	dropScan(t, agent, "itinerary.jpg", scan)

	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("extractor calls = %d, want 1", stub.calls)
	}

	documentID := secrets.HashSensitive(scan)[:16]

	// The structured result landed in the output directory.
	outPath := filepath.Join(agent.config.Scanner.OutputDir, documentID+".json")
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("result not written: %v", err)
	}
	var result models.ExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("result not valid JSON: %v", err)
	}
	if len(result.Legs) != 1 || result.Legs[0].MissionNumber != "PMZF1301C147" {
		t.Errorf("unexpected persisted result: %+v", result)
	}

	// The original was encrypted into the archive and removed from intake.
	archivePath := filepath.Join(agent.config.Scanner.ArchiveDir, documentID+".enc.json")
	archived, err := os.ReadFile(archivePath)
	if err != nil {
		t.Fatalf("archive not written: %v", err)
	}
	var payload secrets.EncryptedPayload
	if err := json.Unmarshal(archived, &payload); err != nil {
		t.Fatalf("archive not a valid payload: %v", err)
	}
	decrypted, err := agent.cipher.DecryptDocument(payload)
	if err != nil {
		t.Fatalf("archived document does not decrypt: %v", err)
	}
	if string(decrypted) != string(scan) {
		t.Error("archived document does not round-trip to the original scan")
	}
	if _, err := os.Stat(filepath.Join(agent.config.Scanner.IntakeDir, "itinerary.jpg")); !os.IsNotExist(err) {
		t.Error("original scan should be removed from intake after archiving")
	}

	// An encryption audit event was recorded.
	var sawEncrypted bool
	for _, e := range audit.Events() {
		if e.Type == security.EventDocumentEncrypted && e.Success {
			sawEncrypted = true
		}
	}
	if !sawEncrypted {
		t.Error("expected a DOCUMENT_ENCRYPTED audit event")
	}
}

func TestSweepSkipsDuplicates(t *testing.T) {
	stub := &stubExtractor{result: oneLegResult()}
	agent, _ := newTestAgent(t, stub)

	scan := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x0A, 0x0B}
	dropScan(t, agent, "first.jpg", scan)

	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	// The same content dropped again under a different name is recognized
	// and not re-submitted to inference.
	dropScan(t, agent, "second.jpg", scan)
	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if stub.calls != 1 {
		t.Errorf("extractor calls = %d, want 1 (duplicate must be skipped)", stub.calls)
	}
}

func TestSweepRetriesTransientFailures(t *testing.T) {
	stub := &stubExtractor{err: &ai.ExtractionError{
		Code:    ai.ReasonInferenceUnavailable,
		Message: "service unavailable",
	}}
	agent, _ := newTestAgent(t, stub)

	dropScan(t, agent, "scan.jpg", []byte{0xFF, 0xD8, 0xFF, 0x01})

	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if stub.calls != 2 {
		t.Errorf("extractor calls = %d, want 2 (transient failures retry on the next sweep)", stub.calls)
	}
}

func TestSweepDoesNotRetryRejectedDocuments(t *testing.T) {
	stub := &stubExtractor{err: &ai.ExtractionError{
		Code:    ai.ReasonInvalidExtraction,
		Message: "no usable flight data",
	}}
	agent, _ := newTestAgent(t, stub)

	dropScan(t, agent, "garbage.jpg", []byte{0xFF, 0xD8, 0xFF, 0x02})

	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if stub.calls != 1 {
		t.Errorf("extractor calls = %d, want 1 (rejected documents are not re-submitted)", stub.calls)
	}
}

func TestSweepEnforcesSizeCap(t *testing.T) {
	stub := &stubExtractor{result: oneLegResult()}
	agent, audit := newTestAgent(t, stub)
	agent.config.Scanner.MaxImageBytes = 4

	dropScan(t, agent, "huge.jpg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02})

	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if stub.calls != 0 {
		t.Errorf("extractor calls = %d, oversized scans must not reach the pipeline", stub.calls)
	}

	var sawFailure bool
	for _, e := range audit.Events() {
		if e.Type == security.EventValidationFailure && !e.Success {
			sawFailure = true
		}
	}
	if !sawFailure {
		t.Error("expected a VALIDATION_FAILURE audit event for the oversized scan")
	}
}

func TestRetrieveArchivedRoundTrips(t *testing.T) {
	stub := &stubExtractor{result: oneLegResult()}
	agent, _ := newTestAgent(t, stub)

	scan := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x11, 0x22, 0x33}
	dropScan(t, agent, "leg.jpg", scan)
	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	documentID := secrets.HashSensitive(scan)[:16]
	got, err := agent.RetrieveArchived(documentID)
	if err != nil {
		t.Fatalf("RetrieveArchived: %v", err)
	}
	if string(got) != string(scan) {
		t.Error("retrieved document does not match the original scan")
	}
}

func TestRetrieveArchivedLogsDecryptionFailure(t *testing.T) {
	stub := &stubExtractor{result: oneLegResult()}
	agent, audit := newTestAgent(t, stub)

	// A corrupted archive must surface as an error and a high-severity
	// audit event, not a crash.
	path := filepath.Join(agent.config.Scanner.ArchiveDir, "deadbeef.enc.json")
	if err := os.WriteFile(path, []byte(`{"encryptedData":"zz","iv":"zz","algorithm":"aes-256-cbc"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := agent.RetrieveArchived("deadbeef"); err == nil {
		t.Fatal("expected an error for a corrupted archive")
	}

	var sawFailure bool
	for _, e := range audit.Events() {
		if e.Type == security.EventDecryptionFailure && e.Severity == security.SeverityHigh {
			sawFailure = true
		}
	}
	if !sawFailure {
		t.Error("expected a high-severity DECRYPTION_FAILURE audit event")
	}
}

func TestSweepIgnoresNonImages(t *testing.T) {
	stub := &stubExtractor{result: oneLegResult()}
	agent, _ := newTestAgent(t, stub)

	dropScan(t, agent, "notes.txt", []byte("not a scan"))
	dropScan(t, agent, "manifest.json", []byte("{}"))

	if err := agent.RunOnce(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if stub.calls != 0 {
		t.Errorf("extractor calls = %d, non-images must be ignored", stub.calls)
	}
}
