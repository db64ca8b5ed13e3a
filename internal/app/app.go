package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tourcrew-backend/internal/adapter/oauth/google"
	"github.com/heartmarshall/tourcrew-backend/internal/auth"
	"github.com/heartmarshall/tourcrew-backend/internal/config"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	authmethodrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/authmethod"
	categoryrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/category"
	contactrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/contact"
	manualrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/manual"
	tokenrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/token"
	tourrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/tour"
	userrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/user"
	authsvc "github.com/heartmarshall/tourcrew-backend/internal/service/auth"
	"github.com/heartmarshall/tourcrew-backend/internal/service/checklist"
	"github.com/heartmarshall/tourcrew-backend/internal/service/contact"
	"github.com/heartmarshall/tourcrew-backend/internal/service/dashboard"
	"github.com/heartmarshall/tourcrew-backend/internal/service/inventory"
	"github.com/heartmarshall/tourcrew-backend/internal/service/manual"
	"github.com/heartmarshall/tourcrew-backend/internal/service/tour"
	"github.com/heartmarshall/tourcrew-backend/internal/transport/middleware"
	"github.com/heartmarshall/tourcrew-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// store, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
	)

	backend, err := OpenBackend(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rl.Stop()

	sessions := auth.NewSessions(logger)
	unsubscribe := sessions.Subscribe(func(ev auth.SessionEvent) {
		logger.Info("session event",
			slog.String("kind", string(ev.Kind)),
			slog.String("user_id", ev.UserID.String()),
			slog.String("method", ev.Method))
	})
	defer unsubscribe()

	handler := NewHandler(cfg, backend, sessions, rl, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// NewAuthService wires the auth service over backend. It is shared by the
// HTTP handler and the maintenance commands.
func NewAuthService(
	cfg *config.Config,
	backend *Backend,
	sessions *auth.Sessions,
	logger *slog.Logger,
) *authsvc.Service {
	return authsvc.NewService(
		logger,
		userrepo.New(backend.Store),
		tokenrepo.New(backend.Store, backend.Tx),
		authmethodrepo.New(backend.Store),
		backend.Tx,
		google.NewVerifier(cfg.Auth, google.DefaultEndpoints, logger),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		sessions,
		cfg.Auth,
	)
}

// NewHandler builds repositories, services and the HTTP handler tree over
// backend.
func NewHandler(
	cfg *config.Config,
	backend *Backend,
	sessions *auth.Sessions,
	rl *middleware.RateLimiter,
	logger *slog.Logger,
) http.Handler {
	store, tx := backend.Store, backend.Tx

	todos := categoryrepo.New[domain.TodoEntry](store, tx, categoryrepo.Todos)
	tobuys := categoryrepo.New[domain.TodoEntry](store, tx, categoryrepo.ToBuys)
	inv := categoryrepo.New[domain.InventoryEntry](store, tx, categoryrepo.Inventory)
	tours := tourrepo.New(store)
	contacts := contactrepo.New(store)
	manuals := manualrepo.New(store)

	authService := NewAuthService(cfg, backend, sessions, logger)

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(backend, backend.Driver, BuildVersion()),
		Auth:   rest.NewAuthHandler(authService, logger),
		Lists: rest.NewListsHandler(
			checklist.NewService(logger, rest.KindTodos, todos, cfg.Lists),
			checklist.NewService(logger, rest.KindToBuys, tobuys, cfg.Lists),
			logger,
		),
		Inventory: rest.NewInventoryHandler(inventory.NewService(logger, inv, cfg.Lists), logger),
		Tours:     rest.NewTourHandler(tour.NewService(logger, tours, tx), logger),
		Contacts:  rest.NewContactHandler(contact.NewService(logger, contacts), logger),
		Manuals:   rest.NewManualHandler(manual.NewService(logger, manuals), logger),
		Dashboard: rest.NewDashboardHandler(
			dashboard.NewService(logger, todos, tobuys, inv, contacts, manuals, tours),
			logger,
		),
	}

	mux := rest.NewRouter(handlers,
		middleware.When(cfg.RateLimit.AuthPerMinute > 0, rl.Limit(cfg.RateLimit.AuthPerMinute)))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		middleware.Logger(logger),
	)(mux)
}
