package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/internal/service/contact"
)

type contactService interface {
	List(ctx context.Context, input contact.ListInput) ([]domain.Contact, error)
	Create(ctx context.Context, input contact.CreateInput) (*domain.Contact, error)
	Update(ctx context.Context, input contact.UpdateInput) (*domain.Contact, error)
	Delete(ctx context.Context, contactID string) error
}

// ContactHandler serves the caller's useful contacts.
type ContactHandler struct {
	svc contactService
	log *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contacts")}
}

type contactRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Notes    *string `json:"notes"`
	City     *string `json:"city"`
}

type contactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toContactResponse(c domain.Contact) contactResponse {
	return contactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Category:  c.Category,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		City:      c.City,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// List handles GET /contacts?name=&category=&city=.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	contacts, err := h.svc.List(r.Context(), contact.ListInput{
		Name:     q.Get("name"),
		Category: q.Get("category"),
		City:     q.Get("city"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]contactResponse, len(contacts))
	for i, c := range contacts {
		out[i] = toContactResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !readBody(w, r, &req) {
		return
	}
	c, err := h.svc.Create(r.Context(), contact.CreateInput{
		Name:     deref(req.Name),
		Category: deref(req.Category),
		Phone:    deref(req.Phone),
		Email:    deref(req.Email),
		Notes:    deref(req.Notes),
		City:     deref(req.City),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContactResponse(*c))
}

// Update handles PATCH /contacts/{contactID}.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !readBody(w, r, &req) {
		return
	}
	c, err := h.svc.Update(r.Context(), contact.UpdateInput{
		ContactID: r.PathValue("contactID"),
		Name:      req.Name,
		Category:  req.Category,
		Phone:     req.Phone,
		Email:     req.Email,
		Notes:     req.Notes,
		City:      req.City,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContactResponse(*c))
}

// Delete handles DELETE /contacts/{contactID}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("contactID")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
