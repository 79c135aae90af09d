package security

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies how much attention an event deserves.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Event types recorded by the pipeline and its callers.
const (
	EventAgentStart        = "AGENT_START"
	EventDocumentEncrypted = "DOCUMENT_ENCRYPTED"
	EventDocumentAccessed  = "DOCUMENT_ACCESSED"
	EventValidationFailure = "VALIDATION_FAILURE"
	EventDecryptionFailure = "DECRYPTION_FAILURE"
)

// Event is one security-relevant occurrence. Append-only; never mutated.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	DocumentID string    `json:"documentId,omitempty"`
	Success    bool      `json:"success"`
	Details    string    `json:"details"`
	Severity   Severity  `json:"severity"`
	Timestamp  time.Time `json:"timestamp"`
}

// Metrics is the aggregate view over the retained window.
type Metrics struct {
	TotalEvents   int       `json:"totalEvents"`
	FailedEvents  int       `json:"failedEvents"`
	LastEventTime time.Time `json:"lastEventTimestamp"`
}

// DefaultMaxEvents bounds memory; this log is an operational signal, not an
// audit of record, so rotation loses nothing the caller was promised.
const DefaultMaxEvents = 1000

// AuditLog is an append-only, capped record of security events. Appends are
// serialized under a mutex; event volume is low enough that this never
// contends meaningfully.
type AuditLog struct {
	mu        sync.Mutex
	events    []Event
	maxEvents int
}

func NewAuditLog(maxEvents int) *AuditLog {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}
	return &AuditLog{maxEvents: maxEvents}
}

// LogEvent appends a timestamped record, evicting the oldest entries once
// the retention cap is exceeded.
func (l *AuditLog) LogEvent(eventType, documentID string, success bool, details string, severity Severity) {
	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		DocumentID: documentID,
		Success:    success,
		Details:    details,
		Severity:   severity,
		Timestamp:  time.Now(),
	}

	l.mu.Lock()
	l.events = append(l.events, event)
	if excess := len(l.events) - l.maxEvents; excess > 0 {
		l.events = append([]Event(nil), l.events[excess:]...)
	}
	l.mu.Unlock()

	if severity == SeverityHigh {
		log.Printf("🚨 Security event %s: %s", eventType, details)
	}
}

// Events returns the retained events, most recent first.
func (l *AuditLog) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Event, len(l.events))
	for i, e := range l.events {
		out[len(l.events)-1-i] = e
	}
	return out
}

// Metrics aggregates over the retained window only; evicted events no longer
// count.
func (l *AuditLog) Metrics() Metrics {
	l.mu.Lock()
	defer l.mu.Unlock()

	m := Metrics{TotalEvents: len(l.events)}
	for _, e := range l.events {
		if !e.Success {
			m.FailedEvents++
		}
	}
	if len(l.events) > 0 {
		m.LastEventTime = l.events[len(l.events)-1].Timestamp
	}
	return m
}
