// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lctflights/flightmap/internal/config"
	"github.com/lctflights/flightmap/internal/dataset"
	"github.com/lctflights/flightmap/internal/logging"
	"github.com/lctflights/flightmap/internal/middleware"
)

// Router is the assembled HTTP handler: chi middleware in front of the
// ordered route table.
type Router struct {
	mux   *chi.Mux
	table *Table
}

// NewRouter wires handlers for store and assets into the route table and
// the middleware stack.
//
// Middleware order, outermost first:
//  1. RequestID: X-Request-ID on every response, IDs in the log context
//  2. RealIP: client address for the rate limiter
//  3. PrometheusMetrics: counts every response, recovered panics included
//  4. Recoverer: panics become 500
func NewRouter(cfg *config.Config, store *dataset.Store, assets fs.FS) (*Router, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if store == nil {
		return nil, ErrNilStore
	}
	if assets == nil {
		return nil, ErrNilAssets
	}

	h := NewHandler(store, assets, cfg)
	table := h.Table()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Recoverer)

	// chi only routes; every decision, 404 and 405 included, is the table's.
	r.Handle("/*", table)
	r.NotFound(table.ServeHTTP)
	r.MethodNotAllowed(table.ServeHTTP)

	logging.Info().
		Strs("routes", table.Routes()).
		Str("asset_root", cfg.Assets.Root).
		Bool("rate_limit", !cfg.Upload.RateLimitDisabled).
		Msg("HTTP routes registered")

	return &Router{mux: r, table: table}, nil
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

// Table exposes the dispatcher for route inspection.
func (rt *Router) Table() *Table {
	return rt.table
}

// Table builds the dispatch table in its committed order. /update is only
// present when the store carries a legacy document.
func (h *Handler) Table() *Table {
	limit := RateLimit(h.cfg.Upload)

	routes := []Route{
		{Name: RoutePreflight, Method: http.MethodOptions, Match: AnyPath(), Handler: http.HandlerFunc(h.Preflight)},
		{Name: RouteMapStats, Method: http.MethodGet, Match: Exact("/flights_percent"), Handler: http.HandlerFunc(h.MapStats)},
		{Name: RouteMapStatsLegacy, Method: http.MethodGet, Match: Exact("/map/stats"), Handler: http.HandlerFunc(h.MapStats)},
		{Name: RouteFlights, Method: http.MethodGet, Match: Exact("/flights"), Handler: http.HandlerFunc(h.Flights)},
	}
	if _, ok := h.store.LegacyDocument(); ok {
		routes = append(routes, Route{
			Name: RouteLegacyUpdate, Method: http.MethodGet, Match: Exact("/update"), Handler: http.HandlerFunc(h.LegacyUpdate),
		})
	}
	routes = append(routes,
		Route{Name: RouteRegionAnalytics, Method: http.MethodGet, Match: Pattern(`^/regions/(\d+)/analytics$`), Handler: http.HandlerFunc(h.RegionAnalytics)},
		Route{Name: RouteRegions, Method: http.MethodGet, Match: Exact("/regions"), Handler: http.HandlerFunc(h.Regions)},
		Route{Name: RouteMapColors, Method: http.MethodGet, Match: Exact("/map/colors"), Handler: http.HandlerFunc(h.MapColors)},
		Route{Name: RouteMapPainted, Method: http.MethodGet, Match: Exact("/map/painted.svg"), Handler: http.HandlerFunc(h.MapPainted)},
		Route{Name: RouteHealth, Method: http.MethodGet, Match: Exact("/healthz"), Handler: http.HandlerFunc(h.Health)},
		Route{Name: RouteMetrics, Method: http.MethodGet, Match: Exact("/metrics"), Handler: h.Metrics()},
		Route{Name: RouteUpload, Method: http.MethodPost, Match: Exact("/post"), Handler: limit(http.HandlerFunc(h.Upload))},
		Route{Name: RouteReportGenerate, Method: http.MethodPost, Match: Exact("/reports/generate"), Handler: limit(http.HandlerFunc(h.GenerateReport))},
	)

	return NewTable(h.cfg.CORS, Fallbacks{
		Get:   http.HandlerFunc(h.Static),
		Post:  http.HandlerFunc(h.NotFound),
		Other: http.HandlerFunc(h.MethodNotAllowed),
	}, routes...)
}
