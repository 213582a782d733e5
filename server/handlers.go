package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"

	"melodex/config"
	"melodex/core/recommend"
	"melodex/logger"
	"melodex/model"
)

// APIHandler serves all API requests. The recommendation service lives
// behind an atomic pointer so the catalog watcher can swap in a freshly
// built service without blocking in-flight requests.
type APIHandler struct {
	svc atomic.Pointer[recommend.Service]
	cfg *config.Config
}

// NewAPIHandler creates a new API handler over an initial service snapshot.
func NewAPIHandler(svc *recommend.Service, cfg *config.Config) *APIHandler {
	h := &APIHandler{cfg: cfg}
	h.svc.Store(svc)
	return h
}

// Swap replaces the recommendation service. Requests already running keep
// the snapshot they started with.
func (h *APIHandler) Swap(svc *recommend.Service) {
	h.svc.Store(svc)
}

func (h *APIHandler) service() *recommend.Service {
	return h.svc.Load()
}

// queryInt reads an integer query parameter, falling back on absence or a
// parse failure.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// resultCount resolves the k parameter against the configured default and cap.
func (h *APIHandler) resultCount(r *http.Request) int {
	k := queryInt(r, "k", h.cfg.DefaultK)
	if k <= 0 {
		k = h.cfg.DefaultK
	}
	if k > h.cfg.MaxK {
		k = h.cfg.MaxK
	}
	return k
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", logger.ErrorField(err))
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrSongNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrUnknownMood), errors.Is(err, model.ErrUnknownGenre):
		status = http.StatusBadRequest
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
