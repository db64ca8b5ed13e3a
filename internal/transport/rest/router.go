package rest

import (
	"net/http"

	"github.com/heartmarshall/tourcrew-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Lists     *ListsHandler
	Inventory *InventoryHandler
	Tours     *TourHandler
	Contacts  *ContactHandler
	Manuals   *ManualHandler
	Dashboard *DashboardHandler
}

// NewRouter registers all routes. signIn wraps the unauthenticated auth
// routes (rate limiting); every other non-health route requires a user
// resolved by middleware.Auth upstream.
func NewRouter(h Handlers, signIn middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	public := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, signIn(fn))
	}
	private := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireUser(fn))
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	public("POST /auth/register", h.Auth.Register)
	public("POST /auth/login", h.Auth.Login)
	public("POST /auth/login/password", h.Auth.LoginWithPassword)
	public("POST /auth/refresh", h.Auth.Refresh)
	private("POST /auth/logout", h.Auth.Logout)
	private("GET /auth/me", h.Auth.Me)

	const lists = "/lists/{kind}/categories"
	private("GET "+lists, h.Lists.List)
	private("POST "+lists, h.Lists.Create)
	private("PATCH "+lists+"/{categoryID}", h.Lists.Rename)
	private("DELETE "+lists+"/{categoryID}", h.Lists.Delete)
	private("POST "+lists+"/{categoryID}/entries", h.Lists.AddEntry)
	private("PATCH "+lists+"/{categoryID}/entries/{entryID}", h.Lists.UpdateEntry)
	private("DELETE "+lists+"/{categoryID}/entries/{entryID}", h.Lists.DeleteEntry)
	private("PUT "+lists+"/{categoryID}/order", h.Lists.Reorder)
	private("POST "+lists+"/{categoryID}/entries/{entryID}/move", h.Lists.Move)

	const inv = "/inventory/categories"
	private("GET "+inv, h.Inventory.List)
	private("POST "+inv, h.Inventory.Create)
	private("PATCH "+inv+"/{categoryID}", h.Inventory.Rename)
	private("DELETE "+inv+"/{categoryID}", h.Inventory.Delete)
	private("POST "+inv+"/{categoryID}/entries", h.Inventory.AddEntry)
	private("PATCH "+inv+"/{categoryID}/entries/{entryID}", h.Inventory.UpdateEntry)
	private("DELETE "+inv+"/{categoryID}/entries/{entryID}", h.Inventory.DeleteEntry)
	private("PUT "+inv+"/{categoryID}/order", h.Inventory.Reorder)
	private("POST "+inv+"/{categoryID}/entries/{entryID}/move", h.Inventory.Move)

	private("GET /tours", h.Tours.ListTours)
	private("POST /tours", h.Tours.CreateTour)
	private("GET /tours/{tourID}", h.Tours.GetTour)
	private("PATCH /tours/{tourID}", h.Tours.UpdateTour)
	private("DELETE /tours/{tourID}", h.Tours.DeleteTour)
	private("GET /tours/{tourID}/artists", h.Tours.ListArtists)
	private("POST /tours/{tourID}/artists", h.Tours.AddArtist)
	private("GET /artists/{artistID}", h.Tours.GetArtist)
	private("PATCH /artists/{artistID}", h.Tours.UpdateArtist)
	private("DELETE /artists/{artistID}", h.Tours.DeleteArtist)

	private("GET /contacts", h.Contacts.List)
	private("POST /contacts", h.Contacts.Create)
	private("PATCH /contacts/{contactID}", h.Contacts.Update)
	private("DELETE /contacts/{contactID}", h.Contacts.Delete)

	private("GET /manuals", h.Manuals.List)
	private("POST /manuals", h.Manuals.Create)
	private("PATCH /manuals/{manualID}", h.Manuals.Update)
	private("DELETE /manuals/{manualID}", h.Manuals.Delete)

	private("GET /dashboard", h.Dashboard.Summary)

	return mux
}
