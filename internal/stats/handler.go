// Package stats serves the portal's read-only HTTP statistics endpoint:
// resolved pool summaries, portal counters, and build information. It
// exposes JSON views over the configuration map owned by the portal and
// never mutates it.
package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/multipool/internal/logger"
	"github.com/MKhiriev/multipool/internal/pool"
)

// PoolProvider supplies the current resolved configuration map. The
// portal swaps the map atomically on reload, so handlers always read a
// complete snapshot.
type PoolProvider interface {
	Pools() pool.ConfigMap
}

// RateProvider supplies exchange rates for the given ticker symbols.
type RateProvider interface {
	Rates(ctx context.Context, symbols []string) (map[string]float64, error)
}

// BuildInfo describes the running binary for the version endpoint.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// Handler owns the stats endpoint routes.
type Handler struct {
	pools   PoolProvider
	rates   RateProvider // nil when no exchange is configured
	build   BuildInfo
	logger  *logger.Logger
	started time.Time
}

// NewHandler wires the stats handler with its data sources. rates may be
// nil; the stats payload then carries no exchange section.
func NewHandler(pools PoolProvider, rates RateProvider, build BuildInfo, log *logger.Logger) *Handler {
	return &Handler{
		pools:   pools,
		rates:   rates,
		build:   build,
		logger:  log,
		started: time.Now(),
	}
}

// Init builds the chi router for the stats endpoint.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/pools", h.poolList)
	router.Get("/api/stats", h.portalStats)
	router.Get("/api/version", h.versionInfo)

	return router
}

// poolSummary is the JSON view of one resolved pool config.
type poolSummary struct {
	Coin      string   `json:"coin"`
	Symbol    string   `json:"symbol"`
	Algorithm string   `json:"algorithm"`
	Ports     []string `json:"ports"`
	Enabled   bool     `json:"enabled"`
}

func (h *Handler) poolList(w http.ResponseWriter, r *http.Request) {
	pools := h.pools.Pools()

	summaries := make([]poolSummary, 0, len(pools))
	for _, cfg := range pools {
		summaries = append(summaries, poolSummary{
			Coin:      cfg.CoinName,
			Symbol:    cfg.Profile.Symbol,
			Algorithm: cfg.Profile.Algorithm,
			Ports:     cfg.Ports(),
			Enabled:   cfg.Enabled,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Coin < summaries[j].Coin })

	h.writeJSON(w, r, http.StatusOK, summaries)
}

// portalStatsResponse aggregates portal counters for the stats page.
type portalStatsResponse struct {
	PoolCount int                `json:"pool_count"`
	PortCount int                `json:"port_count"`
	UptimeSec int64              `json:"uptime_sec"`
	Rates     map[string]float64 `json:"rates,omitempty"`
}

func (h *Handler) portalStats(w http.ResponseWriter, r *http.Request) {
	pools := h.pools.Pools()

	resp := portalStatsResponse{
		PoolCount: len(pools),
		UptimeSec: int64(time.Since(h.started).Seconds()),
	}

	symbols := make([]string, 0, len(pools))
	for _, cfg := range pools {
		resp.PortCount += len(cfg.Ports())
		symbols = append(symbols, cfg.Profile.Symbol)
	}

	if h.rates != nil && len(symbols) > 0 {
		rates, err := h.rates.Rates(r.Context(), symbols)
		if err != nil {
			// rates are best-effort; the stats page works without them
			logger.FromRequest(r).Warn().Err(err).Msg("error fetching exchange rates")
		} else {
			resp.Rates = rates
		}
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) versionInfo(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.build)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error encoding response")
	}
}
