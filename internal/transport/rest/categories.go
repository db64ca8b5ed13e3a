package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/internal/service/category"
)

// categoryService is the part of a list service shared by every list domain.
type categoryService[E domain.Orderable[E]] interface {
	ListCategories(ctx context.Context) ([]domain.Category[E], error)
	CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category[E], error)
	RenameCategory(ctx context.Context, input category.RenameCategoryInput) error
	DeleteCategory(ctx context.Context, categoryID string) error
	DeleteEntry(ctx context.Context, categoryID, entryID string) error
	ReorderEntries(ctx context.Context, input category.ReorderInput) error
	MoveEntry(ctx context.Context, input category.MoveInput) ([]E, error)
}

// categoryHandlers serves the category and ordering routes for one entry
// type. resolve picks the service for a request; it answers 404 itself when
// the request names no known list.
type categoryHandlers[E domain.Orderable[E]] struct {
	log     *slog.Logger
	resolve func(w http.ResponseWriter, r *http.Request) (categoryService[E], bool)
}

type categoryRequest struct {
	Title string `json:"title"`
}

type reorderRequest struct {
	EntryIDs []string `json:"entryIds"`
}

type moveRequest struct {
	To *int `json:"to"`
}

type categoryResponse[E any] struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Entries   []E       `json:"entries"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type entriesResponse[E any] struct {
	Entries []E `json:"entries"`
}

func toCategoryResponse[E domain.Orderable[E]](c domain.Category[E]) categoryResponse[E] {
	entries := c.Entries
	if entries == nil {
		entries = []E{}
	}
	return categoryResponse[E]{
		ID:        c.ID,
		Title:     c.Title,
		Entries:   entries,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// List handles GET …/categories.
func (h *categoryHandlers[E]) List(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.resolve(w, r)
	if !ok {
		return
	}
	cats, err := svc.ListCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]categoryResponse[E], len(cats))
	for i, c := range cats {
		out[i] = toCategoryResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST …/categories.
func (h *categoryHandlers[E]) Create(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.resolve(w, r)
	if !ok {
		return
	}
	var req categoryRequest
	if !readBody(w, r, &req) {
		return
	}
	cat, err := svc.CreateCategory(r.Context(), category.CreateCategoryInput{Title: req.Title})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(*cat))
}

// Rename handles PATCH …/categories/{categoryID}.
func (h *categoryHandlers[E]) Rename(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.resolve(w, r)
	if !ok {
		return
	}
	var req categoryRequest
	if !readBody(w, r, &req) {
		return
	}
	err := svc.RenameCategory(r.Context(), category.RenameCategoryInput{
		CategoryID: r.PathValue("categoryID"),
		Title:      req.Title,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE …/categories/{categoryID}.
func (h *categoryHandlers[E]) Delete(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.resolve(w, r)
	if !ok {
		return
	}
	if err := svc.DeleteCategory(r.Context(), r.PathValue("categoryID")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteEntry handles DELETE …/categories/{categoryID}/entries/{entryID}.
func (h *categoryHandlers[E]) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.resolve(w, r)
	if !ok {
		return
	}
	if err := svc.DeleteEntry(r.Context(), r.PathValue("categoryID"), r.PathValue("entryID")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles PUT …/categories/{categoryID}/order.
func (h *categoryHandlers[E]) Reorder(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.resolve(w, r)
	if !ok {
		return
	}
	var req reorderRequest
	if !readBody(w, r, &req) {
		return
	}
	err := svc.ReorderEntries(r.Context(), category.ReorderInput{
		CategoryID: r.PathValue("categoryID"),
		EntryIDs:   req.EntryIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Move handles POST …/categories/{categoryID}/entries/{entryID}/move.
func (h *categoryHandlers[E]) Move(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.resolve(w, r)
	if !ok {
		return
	}
	var req moveRequest
	if !readBody(w, r, &req) {
		return
	}
	if req.To == nil {
		handleError(h.log, w, r, domain.NewValidationError("to", "required"))
		return
	}
	entries, err := svc.MoveEntry(r.Context(), category.MoveInput{
		CategoryID: r.PathValue("categoryID"),
		EntryID:    r.PathValue("entryID"),
		To:         *req.To,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entriesResponse[E]{Entries: entries})
}
