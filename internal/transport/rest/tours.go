package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/internal/service/tour"
)

type tourService interface {
	ListTours(ctx context.Context) ([]domain.Tour, error)
	GetTour(ctx context.Context, tourID string) (*domain.Tour, error)
	CreateTour(ctx context.Context, input tour.CreateTourInput) (*domain.Tour, error)
	UpdateTour(ctx context.Context, input tour.UpdateTourInput) (*domain.Tour, error)
	DeleteTour(ctx context.Context, tourID string) error
	ListArtists(ctx context.Context, tourID string) ([]domain.TourArtist, error)
	GetArtist(ctx context.Context, artistID string) (*domain.TourArtist, error)
	AddArtist(ctx context.Context, input tour.AddArtistInput) (*domain.TourArtist, error)
	UpdateArtist(ctx context.Context, input tour.UpdateArtistInput) (*domain.TourArtist, error)
	DeleteArtist(ctx context.Context, artistID string) error
}

// TourHandler serves tours and their artists.
type TourHandler struct {
	svc tourService
	log *slog.Logger
}

// NewTourHandler creates a TourHandler.
func NewTourHandler(svc tourService, logger *slog.Logger) *TourHandler {
	return &TourHandler{svc: svc, log: logger.With("handler", "tours")}
}

type tourRequest struct {
	Name        *string `json:"name"`
	StagePlot   *string `json:"stagePlot"`
	ChannelList *string `json:"channelList"`
}

type artistRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

type tourResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	StagePlot   string    `json:"stagePlot"`
	ChannelList string    `json:"channelList"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type artistResponse struct {
	ID        string    `json:"id"`
	TourID    string    `json:"tourId"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toTourResponse(t domain.Tour) tourResponse {
	return tourResponse{
		ID:          t.ID,
		Name:        t.Name,
		StagePlot:   t.StagePlot,
		ChannelList: t.ChannelList,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toArtistResponse(a domain.TourArtist) artistResponse {
	return artistResponse{
		ID:        a.ID,
		TourID:    a.TourID,
		Name:      a.Name,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListTours handles GET /tours.
func (h *TourHandler) ListTours(w http.ResponseWriter, r *http.Request) {
	tours, err := h.svc.ListTours(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]tourResponse, len(tours))
	for i, t := range tours {
		out[i] = toTourResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetTour handles GET /tours/{tourID}.
func (h *TourHandler) GetTour(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetTour(r.Context(), r.PathValue("tourID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTourResponse(*t))
}

// CreateTour handles POST /tours.
func (h *TourHandler) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req tourRequest
	if !readBody(w, r, &req) {
		return
	}
	t, err := h.svc.CreateTour(r.Context(), tour.CreateTourInput{
		Name:        deref(req.Name),
		StagePlot:   deref(req.StagePlot),
		ChannelList: deref(req.ChannelList),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTourResponse(*t))
}

// UpdateTour handles PATCH /tours/{tourID}.
func (h *TourHandler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	var req tourRequest
	if !readBody(w, r, &req) {
		return
	}
	t, err := h.svc.UpdateTour(r.Context(), tour.UpdateTourInput{
		TourID:      r.PathValue("tourID"),
		Name:        req.Name,
		StagePlot:   req.StagePlot,
		ChannelList: req.ChannelList,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTourResponse(*t))
}

// DeleteTour handles DELETE /tours/{tourID}.
func (h *TourHandler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTour(r.Context(), r.PathValue("tourID")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListArtists handles GET /tours/{tourID}/artists.
func (h *TourHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.svc.ListArtists(r.Context(), r.PathValue("tourID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]artistResponse, len(artists))
	for i, a := range artists {
		out[i] = toArtistResponse(a)
	}
	writeJSON(w, http.StatusOK, out)
}

// AddArtist handles POST /tours/{tourID}/artists.
func (h *TourHandler) AddArtist(w http.ResponseWriter, r *http.Request) {
	var req artistRequest
	if !readBody(w, r, &req) {
		return
	}
	a, err := h.svc.AddArtist(r.Context(), tour.AddArtistInput{
		TourID: r.PathValue("tourID"),
		Name:   deref(req.Name),
		Role:   deref(req.Role),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toArtistResponse(*a))
}

// GetArtist handles GET /artists/{artistID}.
func (h *TourHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetArtist(r.Context(), r.PathValue("artistID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArtistResponse(*a))
}

// UpdateArtist handles PATCH /artists/{artistID}.
func (h *TourHandler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	var req artistRequest
	if !readBody(w, r, &req) {
		return
	}
	a, err := h.svc.UpdateArtist(r.Context(), tour.UpdateArtistInput{
		ArtistID: r.PathValue("artistID"),
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArtistResponse(*a))
}

// DeleteArtist handles DELETE /artists/{artistID}.
func (h *TourHandler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteArtist(r.Context(), r.PathValue("artistID")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
