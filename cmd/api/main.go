package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lelo88/gearshop-api/internal/cart"
	"github.com/Lelo88/gearshop-api/internal/config"
	"github.com/Lelo88/gearshop-api/internal/db"
	"github.com/Lelo88/gearshop-api/internal/docs"
	"github.com/Lelo88/gearshop-api/internal/gear"
	"github.com/Lelo88/gearshop-api/internal/health"
	"github.com/Lelo88/gearshop-api/internal/httpx"
	"github.com/Lelo88/gearshop-api/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// appDeps agrupa lo que run necesita del mundo exterior, así los tests lo reemplazan.
type appDeps struct {
	loadConfig     func() (config.Config, error)
	openDatabase   func(ctx context.Context, databaseURL string) (*db.Database, error)
	listenAndServe func(server *http.Server) error
	logOutput      io.Writer // nil: stdout
}

var (
	loadConfigFn     = config.Load
	openDatabaseFn   = db.Open
	listenAndServeFn = func(server *http.Server) error {
		return server.ListenAndServe()
	}
	fatalf = log.Fatal
)

func main() {
	// Contexto raíz del proceso: se cancela con SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, appDeps{
		loadConfig:     loadConfigFn,
		openDatabase:   openDatabaseFn,
		listenAndServe: listenAndServeFn,
	})
	if err != nil {
		fatalf(err)
	}
}

func run(ctx context.Context, deps appDeps) error {
	cfg, err := deps.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.LogLevel)
	if deps.logOutput != nil {
		logger = logging.NewWithWriter(deps.logOutput, cfg.LogLevel)
	}

	database, err := deps.openDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("database_close_failed", "error", err)
		}
	}()

	if err := db.Migrate(ctx, database, models()...); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           buildRouter(cfg, database, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown_failed", "error", err)
		}
	}()

	logger.Info("listening", "addr", server.Addr)
	err = deps.listenAndServe(server)
	cancel()
	<-shutdownDone

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// models son las tablas que la app crea al arrancar si no existen.
func models() []any {
	return []any{&gear.Record{}, &cart.Record{}}
}

func buildRouter(cfg config.Config, database *db.Database, logger *slog.Logger) http.Handler {
	router := chi.NewRouter()

	// Middlewares base para trazabilidad y estabilidad.
	router.Use(middleware.RealIP)
	router.Use(httpx.RequestID)
	router.Use(logging.RequestLogger(logger))
	router.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", httpx.HeaderRequestID},
		ExposedHeaders: []string{httpx.HeaderRequestID},
		MaxAge:         300,
	}))

	// Errores de routing se manejan a nivel router.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusNotFound, httpx.MessageRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusMethodNotAllowed, httpx.MessageMethodNotAllowed)
	})

	healthHandler := health.New(database)
	router.Get("/health", healthHandler.Health)
	router.Get("/ready", healthHandler.Ready)

	docs.RegisterRoutes(router)

	gearRepository := gear.NewRepository(database.Gorm())
	gear.RegisterRoutes(router, gear.NewHandler(gear.NewService(gearRepository)))

	cartRepository := cart.NewRepository(database.Gorm())
	cart.RegisterRoutes(router, cart.NewHandler(cart.NewService(cartRepository)))

	return router
}
