// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"context"
	"net/http"
	"regexp"

	"github.com/lctflights/flightmap/internal/config"
	"github.com/lctflights/flightmap/internal/middleware"
)

// Route names. They double as the "route" label on request metrics.
const (
	RoutePreflight        = "preflight"
	RouteMapStats         = "map_stats"
	RouteMapStatsLegacy   = "map_stats_legacy"
	RouteFlights          = "flights"
	RouteLegacyUpdate     = "legacy_update"
	RouteRegionAnalytics  = "region_analytics"
	RouteRegions          = "regions"
	RouteMapColors        = "map_colors"
	RouteMapPainted       = "map_painted"
	RouteHealth           = "health"
	RouteMetrics          = "metrics"
	RouteUpload           = "upload"
	RouteReportGenerate   = "report_generate"
	RouteStatic           = "static"
	RouteNotFound         = "not_found"
	RouteMethodNotAllowed = "method_not_allowed"
)

// Matcher reports whether path matches and returns any captured groups.
type Matcher func(path string) (params []string, ok bool)

// Exact matches one literal path.
func Exact(want string) Matcher {
	return func(path string) ([]string, bool) {
		return nil, path == want
	}
}

// Pattern matches a regular expression against the whole path. Submatches
// become route params.
func Pattern(expr string) Matcher {
	re := regexp.MustCompile(expr)
	return func(path string) ([]string, bool) {
		m := re.FindStringSubmatch(path)
		if m == nil {
			return nil, false
		}
		return m[1:], true
	}
}

// AnyPath matches every path.
func AnyPath() Matcher {
	return func(string) ([]string, bool) { return nil, true }
}

// Route is one entry of the dispatch table.
type Route struct {
	Name    string
	Method  string
	Match   Matcher
	Handler http.Handler
}

// Fallbacks handle requests no route claims, by method.
type Fallbacks struct {
	Get   http.Handler
	Post  http.Handler
	Other http.Handler
}

// Table is the ordered dispatcher. The first route whose method and matcher
// both accept a request handles it; otherwise the method fallback does.
type Table struct {
	routes    []Route
	fallbacks Fallbacks
	cors      corsHeaders
}

type corsHeaders struct {
	origin  string
	methods string
	headers string
}

// NewTable builds a table over routes in the given order.
func NewTable(cors config.CORSConfig, fallbacks Fallbacks, routes ...Route) *Table {
	return &Table{
		routes:    routes,
		fallbacks: fallbacks,
		cors: corsHeaders{
			origin:  cors.AllowOrigin,
			methods: cors.MethodsHeader(),
			headers: cors.HeadersHeader(),
		},
	}
}

// Routes returns the route names in dispatch order.
func (t *Table) Routes() []string {
	names := make([]string, len(t.routes))
	for i, rt := range t.routes {
		names[i] = rt.Name
	}
	return names
}

// Resolve returns the route name and params a request for method and path
// would dispatch to, without running any handler.
func (t *Table) Resolve(method, path string) (string, []string) {
	if rt, params, ok := t.match(method, path); ok {
		return rt.Name, params
	}
	name, _ := t.fallback(method)
	return name, nil
}

func (t *Table) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", t.cors.origin)
	h.Set("Access-Control-Allow-Methods", t.cors.methods)
	h.Set("Access-Control-Allow-Headers", t.cors.headers)

	if rt, params, ok := t.match(r.Method, r.URL.Path); ok {
		middleware.SetRoute(r.Context(), rt.Name)
		if len(params) > 0 {
			r = r.WithContext(context.WithValue(r.Context(), paramsKey{}, params))
		}
		rt.Handler.ServeHTTP(w, r)
		return
	}

	name, next := t.fallback(r.Method)
	middleware.SetRoute(r.Context(), name)
	next.ServeHTTP(w, r)
}

func (t *Table) match(method, path string) (Route, []string, bool) {
	for _, rt := range t.routes {
		if rt.Method != method {
			continue
		}
		if params, ok := rt.Match(path); ok {
			return rt, params, true
		}
	}
	return Route{}, nil, false
}

func (t *Table) fallback(method string) (string, http.Handler) {
	switch method {
	case http.MethodGet:
		return RouteStatic, t.fallbacks.Get
	case http.MethodPost:
		return RouteNotFound, t.fallbacks.Post
	default:
		return RouteMethodNotAllowed, t.fallbacks.Other
	}
}

type paramsKey struct{}

// PathParam returns the i-th regex capture of the matched route, or "".
func PathParam(r *http.Request, i int) string {
	params, _ := r.Context().Value(paramsKey{}).([]string)
	if i < 0 || i >= len(params) {
		return ""
	}
	return params[i]
}
