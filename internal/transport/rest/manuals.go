package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/internal/service/manual"
)

type manualService interface {
	List(ctx context.Context) ([]domain.Manual, error)
	Create(ctx context.Context, input manual.Input) (*domain.Manual, error)
	Update(ctx context.Context, manualID string, input manual.Input) (*domain.Manual, error)
	Delete(ctx context.Context, manualID string) error
}

// ManualHandler serves the caller's equipment manuals.
type ManualHandler struct {
	svc manualService
	log *slog.Logger
}

// NewManualHandler creates a ManualHandler.
func NewManualHandler(svc manualService, logger *slog.Logger) *ManualHandler {
	return &ManualHandler{svc: svc, log: logger.With("handler", "manuals")}
}

type manualRequest struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type manualResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toManualResponse(m domain.Manual) manualResponse {
	return manualResponse{
		ID:        m.ID,
		Title:     m.Title,
		Link:      m.Link,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// List handles GET /manuals.
func (h *ManualHandler) List(w http.ResponseWriter, r *http.Request) {
	manuals, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]manualResponse, len(manuals))
	for i, m := range manuals {
		out[i] = toManualResponse(m)
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /manuals.
func (h *ManualHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req manualRequest
	if !readBody(w, r, &req) {
		return
	}
	m, err := h.svc.Create(r.Context(), manual.Input{Title: req.Title, Link: req.Link})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toManualResponse(*m))
}

// Update handles PATCH /manuals/{manualID}. Both fields are replaced.
func (h *ManualHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req manualRequest
	if !readBody(w, r, &req) {
		return
	}
	m, err := h.svc.Update(r.Context(), r.PathValue("manualID"), manual.Input{Title: req.Title, Link: req.Link})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toManualResponse(*m))
}

// Delete handles DELETE /manuals/{manualID}.
func (h *ManualHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("manualID")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
