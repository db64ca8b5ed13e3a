package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// storePinger is satisfied by app.Backend for either store driver.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	store   storePinger
	driver  string
	version string
	started time.Time
}

// NewHealthHandler creates a HealthHandler for the store opened with driver.
func NewHealthHandler(store storePinger, driver, version string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver, version: version, started: time.Now()}
}

type healthResponse struct {
	Status    string          `json:"status"`
	Version   string          `json:"version,omitempty"`
	Uptime    string          `json:"uptime,omitempty"`
	Store     *storeComponent `json:"store,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type storeComponent struct {
	Status  string `json:"status"`
	Driver  string `json:"driver"`
	Latency string `json:"latency,omitempty"`
}

// Live answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready answers 200 when the store responds and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	store := h.checkStore(r.Context())
	writeJSON(w, statusFor(store), healthResponse{Status: store.Status, Timestamp: time.Now().UTC()})
}

// Health is Ready plus version, uptime and store details.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	store := h.checkStore(r.Context())
	writeJSON(w, statusFor(store), healthResponse{
		Status:    store.Status,
		Version:   h.version,
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Store:     store,
		Timestamp: time.Now().UTC(),
	})
}

func (h *HealthHandler) checkStore(ctx context.Context) *storeComponent {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.store.Ping(ctx); err != nil {
		return &storeComponent{Status: "down", Driver: h.driver}
	}
	return &storeComponent{Status: "ok", Driver: h.driver, Latency: time.Since(start).String()}
}

func statusFor(c *storeComponent) int {
	if c.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
