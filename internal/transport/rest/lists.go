package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/internal/service/checklist"
	"github.com/heartmarshall/tourcrew-backend/internal/service/inventory"
)

// List kinds served under /lists/{kind}.
const (
	KindTodos  = "todos"
	KindToBuys = "tobuys"
)

type checklistService interface {
	categoryService[domain.TodoEntry]
	AddEntry(ctx context.Context, input checklist.AddEntryInput) (domain.TodoEntry, error)
	UpdateEntry(ctx context.Context, input checklist.UpdateEntryInput) (domain.TodoEntry, error)
}

// ListsHandler serves the to-do and to-buy checklists, selected by the
// {kind} path segment.
type ListsHandler struct {
	categoryHandlers[domain.TodoEntry]
	lists map[string]checklistService
	log   *slog.Logger
}

// NewListsHandler creates a ListsHandler.
func NewListsHandler(todos, tobuys checklistService, logger *slog.Logger) *ListsHandler {
	h := &ListsHandler{
		lists: map[string]checklistService{
			KindTodos:  todos,
			KindToBuys: tobuys,
		},
		log: logger.With("handler", "lists"),
	}
	h.categoryHandlers = categoryHandlers[domain.TodoEntry]{
		log: h.log,
		resolve: func(w http.ResponseWriter, r *http.Request) (categoryService[domain.TodoEntry], bool) {
			return h.service(w, r)
		},
	}
	return h
}

func (h *ListsHandler) service(w http.ResponseWriter, r *http.Request) (checklistService, bool) {
	svc, ok := h.lists[r.PathValue("kind")]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown list")
		return nil, false
	}
	return svc, true
}

type todoEntryRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// AddEntry handles POST /lists/{kind}/categories/{categoryID}/entries.
func (h *ListsHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	var req todoEntryRequest
	if !readBody(w, r, &req) {
		return
	}
	input := checklist.AddEntryInput{CategoryID: r.PathValue("categoryID")}
	if req.Text != nil {
		input.Text = *req.Text
	}
	entry, err := svc.AddEntry(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// UpdateEntry handles PATCH /lists/{kind}/categories/{categoryID}/entries/{entryID}.
func (h *ListsHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	var req todoEntryRequest
	if !readBody(w, r, &req) {
		return
	}
	entry, err := svc.UpdateEntry(r.Context(), checklist.UpdateEntryInput{
		CategoryID: r.PathValue("categoryID"),
		EntryID:    r.PathValue("entryID"),
		Text:       req.Text,
		Completed:  req.Completed,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

type inventoryService interface {
	categoryService[domain.InventoryEntry]
	AddEntry(ctx context.Context, input inventory.AddEntryInput) (domain.InventoryEntry, error)
	UpdateEntry(ctx context.Context, input inventory.UpdateEntryInput) (domain.InventoryEntry, error)
}

// InventoryHandler serves /inventory.
type InventoryHandler struct {
	categoryHandlers[domain.InventoryEntry]
	svc inventoryService
	log *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc inventoryService, logger *slog.Logger) *InventoryHandler {
	log := logger.With("handler", "inventory")
	return &InventoryHandler{
		categoryHandlers: categoryHandlers[domain.InventoryEntry]{
			log: log,
			resolve: func(http.ResponseWriter, *http.Request) (categoryService[domain.InventoryEntry], bool) {
				return svc, true
			},
		},
		svc: svc,
		log: log,
	}
}

type inventoryEntryRequest struct {
	Name   *string `json:"name"`
	Number *int    `json:"number"`
}

// AddEntry handles POST /inventory/categories/{categoryID}/entries.
func (h *InventoryHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req inventoryEntryRequest
	if !readBody(w, r, &req) {
		return
	}
	input := inventory.AddEntryInput{CategoryID: r.PathValue("categoryID")}
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Number != nil {
		input.Number = *req.Number
	}
	entry, err := h.svc.AddEntry(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// UpdateEntry handles PATCH /inventory/categories/{categoryID}/entries/{entryID}.
func (h *InventoryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req inventoryEntryRequest
	if !readBody(w, r, &req) {
		return
	}
	entry, err := h.svc.UpdateEntry(r.Context(), inventory.UpdateEntryInput{
		CategoryID: r.PathValue("categoryID"),
		EntryID:    r.PathValue("entryID"),
		Name:       req.Name,
		Number:     req.Number,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
