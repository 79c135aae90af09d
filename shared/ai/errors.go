package ai

import (
	"errors"
	"fmt"
)

// ReasonCode is the machine-readable classification of a failed extraction,
// so callers can show format guidance, retry advice, or rescan advice
// instead of a generic failure.
type ReasonCode string

const (
	// ReasonUnsupportedFormat: the image itself cannot be used (HEIC or
	// unrecognized bytes). Recoverable by the user re-exporting the photo.
	ReasonUnsupportedFormat ReasonCode = "unsupported_format"
	// ReasonInferenceUnavailable: timeout, auth failure, or transport error
	// talking to the model. Transient; the caller may resubmit.
	ReasonInferenceUnavailable ReasonCode = "inference_unavailable"
	// ReasonInvalidExtraction: the model's answer could not be repaired into
	// usable flight data. The document must be rescanned or entered by hand.
	ReasonInvalidExtraction ReasonCode = "invalid_extraction"
)

// ExtractionError is the typed failure returned for the current document.
// Message is user-facing remediation text; Err carries the underlying cause.
type ExtractionError struct {
	Code    ReasonCode
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ReasonOf extracts the reason code from an error chain.
func ReasonOf(err error) (ReasonCode, bool) {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Code, true
	}
	return "", false
}

const heicGuidance = "HEIC images are not supported. Convert the photo to JPEG or PNG first (iPhone: Settings > Camera > Formats > Most Compatible)."

const invalidGuidance = "Could not extract valid flight data. Ensure the photo shows a clear AMC IMI 170 form and try again."
