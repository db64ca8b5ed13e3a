package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tourcrew-backend/internal/service/dashboard"
)

type dashboardService interface {
	Summary(ctx context.Context) (*dashboard.Summary, error)
}

// DashboardHandler serves the home screen counters.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type dashboardResponse struct {
	TodoCategories      int `json:"todoCategories"`
	ToBuyCategories     int `json:"toBuyCategories"`
	InventoryCategories int `json:"inventoryCategories"`
	Contacts            int `json:"contacts"`
	Manuals             int `json:"manuals"`
	Tours               int `json:"tours"`
}

// Summary handles GET /dashboard.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse(*s))
}
