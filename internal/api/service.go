// Package api provides the local HTTP forecast service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mfelsing/hourburn/internal/forecast"
	"github.com/mfelsing/hourburn/internal/model"
	"github.com/mfelsing/hourburn/internal/store"
)

// DefaultAddr is the loopback address the service binds when none is
// configured.
const DefaultAddr = "127.0.0.1:8491"

// Config controls the service runtime behavior.
type Config struct {
	Addr   string
	Params forecast.Params
}

// Service serves forecasts and override management over HTTP.
type Service struct {
	cfg   Config
	store *store.Store
	now   func() time.Time
}

// New returns a service backed by the given store.
func New(cfg Config, st *store.Store) *Service {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	return &Service{
		cfg:   cfg,
		store: st,
		now:   time.Now,
	}
}

// Run serves the HTTP API until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Printf("hourburn api listening on %s", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("api http server: %w", err)
	}
}

// Handler returns the routed HTTP handler.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/forecast", s.handleForecast)
	mux.HandleFunc("/v1/override", s.handleOverride)
	mux.HandleFunc("/v1/projects", s.handleProjects)
	return mux
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	scope, ok := scopeFromQuery(w, r)
	if !ok {
		return
	}

	asOf := s.now()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid as_of %q, want YYYY-MM-DD", raw))
			return
		}
		asOf = parsed
	}

	bookings, err := s.store.Bookings(scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	target, err := s.store.TargetHoursAt(scope, asOf)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	projector := forecast.NewProjector(s.cfg.Params, s.store)
	fc, err := projector.Forecast(scope, bookings, target, asOf)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, fc)
}

// overridePayload is the PUT request body for /v1/override.
type overridePayload struct {
	HoursPerSprint float64 `json:"hours_per_sprint"`
	Reason         string  `json:"reason"`
	Author         string  `json:"author"`
}

func (s *Service) handleOverride(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromQuery(w, r)
	if !ok {
		return
	}

	overrides := forecast.NewOverrides(s.store)

	switch r.Method {
	case http.MethodGet:
		ov, found, err := overrides.Read(scope)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if !found {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no override for %s", scope))
			return
		}
		writeJSON(w, http.StatusOK, ov)

	case http.MethodPut:
		var payload overridePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		ov, err := overrides.Write(scope, payload.HoursPerSprint, payload.Reason, payload.Author, s.now())
		if err != nil {
			if errors.Is(err, forecast.ErrValidation) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, ov)

	case http.MethodDelete:
		if err := overrides.Clear(scope); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Service) handleProjects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	scopes, err := s.store.Scopes()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if scopes == nil {
		scopes = []model.ScopeSummary{}
	}
	writeJSON(w, http.StatusOK, scopes)
}

func scopeFromQuery(w http.ResponseWriter, r *http.Request) (model.Scope, bool) {
	project := strings.TrimSpace(r.URL.Query().Get("project"))
	if project == "" {
		writeError(w, http.StatusBadRequest, "missing project parameter")
		return model.Scope{}, false
	}
	return model.Scope{
		Project:  project,
		Activity: strings.TrimSpace(r.URL.Query().Get("activity")),
	}, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
