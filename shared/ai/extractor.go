package ai

import (
	"context"
	"fmt"
	"log"
	"time"

	"mission-scanner/internal/models"
	"mission-scanner/shared/airports"
	"mission-scanner/shared/config"
	"mission-scanner/shared/security"

	"google.golang.org/genai"
)

// visionModel is the seam between the pipeline and the external inference
// service. Any provider works as long as it can be prompted into the fixed
// output shape.
type visionModel interface {
	generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

type geminiModel struct {
	client *genai.Client
	model  string
}

func (g *geminiModel) generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// Extractor converts an uploaded itinerary image into structured flight
// legs. Each call is an independent unit of work; the only shared state is
// the read-only airport directory and the audit log.
type Extractor struct {
	model         visionModel
	directory     *airports.Directory
	audit         *security.AuditLog
	timeout       time.Duration
	minConfidence float64
}

func NewExtractor(cfg *config.Config, directory *airports.Directory, audit *security.AuditLog) (*Extractor, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.AI.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Extractor{
		model:         &geminiModel{client: client, model: cfg.AI.Model},
		directory:     directory,
		audit:         audit,
		timeout:       time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		minConfidence: cfg.AI.MinConfidence,
	}, nil
}

// ProcessDocument runs the full pipeline: format check, one bounded model
// call, response repair, the validity gate, and best-effort distance
// enrichment. Failures come back as *ExtractionError with a reason code; no
// retry happens here.
func (e *Extractor) ProcessDocument(ctx context.Context, documentID string, image []byte) (*models.ExtractionResult, error) {
	switch format := detectImageFormat(image); format {
	case formatHEIC:
		e.audit.LogEvent(security.EventValidationFailure, documentID, false,
			"HEIC document rejected before inference", security.SeverityLow)
		return nil, &ExtractionError{Code: ReasonUnsupportedFormat, Message: heicGuidance}
	case formatUnknown:
		e.audit.LogEvent(security.EventValidationFailure, documentID, false,
			"unrecognized image format", security.SeverityLow)
		return nil, &ExtractionError{
			Code:    ReasonUnsupportedFormat,
			Message: "Unrecognized image format. Upload a JPEG or PNG scan of the form.",
		}
	default:
		return e.process(ctx, documentID, image, format)
	}
}

func (e *Extractor) process(ctx context.Context, documentID string, image []byte, format imageFormat) (*models.ExtractionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	response, err := e.model.generate(ctx, extractionPrompt, image, format.mimeType())
	if err != nil {
		e.audit.LogEvent(security.EventValidationFailure, documentID, false,
			fmt.Sprintf("inference call failed: %v", err), security.SeverityMedium)
		return nil, &ExtractionError{
			Code:    ReasonInferenceUnavailable,
			Message: "The document service is unavailable. Try again shortly.",
			Err:     err,
		}
	}

	result, err := parseExtraction(response)
	if err != nil {
		e.audit.LogEvent(security.EventValidationFailure, documentID, false,
			fmt.Sprintf("unusable model response: %v", err), security.SeverityMedium)
		return nil, &ExtractionError{Code: ReasonInvalidExtraction, Message: invalidGuidance, Err: err}
	}

	if err := validateExtraction(result); err != nil {
		e.audit.LogEvent(security.EventValidationFailure, documentID, false,
			err.Error(), security.SeverityMedium)
		return nil, &ExtractionError{Code: ReasonInvalidExtraction, Message: invalidGuidance, Err: err}
	}

	e.enrichDistances(result)
	result.NeedsReview = result.Confidence < e.minConfidence

	e.audit.LogEvent(security.EventDocumentAccessed, documentID, true,
		fmt.Sprintf("document processed: %d legs, confidence %.2f", len(result.Legs), result.Confidence),
		security.SeverityLow)
	return result, nil
}

// validateExtraction is the pre-acceptance gate: accept the result only if
// every leg carries the fields downstream cannot live without.
func validateExtraction(result *models.ExtractionResult) error {
	if len(result.Legs) == 0 {
		return fmt.Errorf("no flight legs extracted")
	}
	for i, leg := range result.Legs {
		if leg.DepartureIcao == "" || leg.ArrivalIcao == "" || leg.MissionNumber == "" {
			return fmt.Errorf("leg %d is missing required fields", i+1)
		}
	}
	return nil
}

// enrichDistances attaches great-circle distances where both airports
// resolve. Unresolved pairs stay nil; an enrichment miss never fails the
// extraction.
func (e *Extractor) enrichDistances(result *models.ExtractionResult) {
	for i := range result.Legs {
		leg := &result.Legs[i]
		nm, ok := e.directory.DistanceNM(leg.DepartureIcao, leg.ArrivalIcao)
		if !ok {
			log.Printf("No distance for %s -> %s (airport not in directory)", leg.DepartureIcao, leg.ArrivalIcao)
			continue
		}
		leg.DistanceNm = &nm
	}
}
