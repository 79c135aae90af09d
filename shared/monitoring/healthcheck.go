package monitoring

import (
	"fmt"
	"log"
	"net/http"

	"mission-scanner/shared/security"
)

// HealthServer exposes sweep health plus the security audit metrics so an
// operator can see failed-event counts without shell access.
type HealthServer struct {
	monitor *Monitor
	audit   *security.AuditLog
	port    string
}

func NewHealthServer(monitor *Monitor, audit *security.AuditLog, port string) *HealthServer {
	if port == "" {
		port = "8080"
	}
	return &HealthServer{
		monitor: monitor,
		audit:   audit,
		port:    port,
	}
}

func (h *HealthServer) Start() {
	http.HandleFunc("/health", h.healthHandler)
	http.HandleFunc("/status", h.statusHandler)

	log.Printf("Health check server starting on port %s", h.port)
	go func() {
		if err := http.ListenAndServe(":"+h.port, nil); err != nil {
			log.Printf("Health server error: %v", err)
		}
	}()
}

func (h *HealthServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	if h.monitor.IsHealthy() {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK - %s", h.monitor.GetStatusSummary())
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintf(w, "Service unhealthy - %s", h.monitor.GetStatusSummary())
	}
}

func (h *HealthServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "%s\n", h.monitor.GetStatusSummary())
	if h.audit != nil {
		m := h.audit.Metrics()
		fmt.Fprintf(w, "Security events: %d total, %d failed", m.TotalEvents, m.FailedEvents)
		if !m.LastEventTime.IsZero() {
			fmt.Fprintf(w, ", last at %s", m.LastEventTime.Format("Jan 2 15:04:05"))
		}
		fmt.Fprintln(w)
	}
}
