package health

import (
	"context"
	"net/http"
	"time"

	"github.com/Lelo88/gearshop-api/internal/httpx"
	"github.com/Lelo88/gearshop-api/internal/logging"
)

const readyTimeout = 2 * time.Second

// Pinger es lo único que /ready necesita de la base.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler encapsula endpoints de health.
type Handler struct {
	db Pinger
}

// New crea un handler de health. db puede ser nil: /ready responde 503.
func New(db Pinger) *Handler {
	return &Handler{db: db}
}

// Health indica si el proceso está vivo.
// NO chequea base de datos. Eso va en /ready.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready indica si la app puede atender tráfico (la DB responde).
func (handler *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if handler.db == nil {
		httpx.Fail(w, http.StatusServiceUnavailable, "Error: database not configured.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := handler.db.Ping(ctx); err != nil {
		logging.FromContext(r.Context()).Warn("ready_check_failed", "error", err)
		httpx.Fail(w, http.StatusServiceUnavailable, "Error: database is not reachable.")
		return
	}

	httpx.OK(w, http.StatusOK, map[string]any{"status": "ready"})
}
