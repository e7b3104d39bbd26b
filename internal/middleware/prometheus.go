// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lctflights/flightmap/internal/metrics"
)

// UnmatchedRoute labels requests that never reached a dispatcher.
const UnmatchedRoute = "unmatched"

type routeKey struct{}

// routeLabel is filled in by the dispatcher once it picks a route. Raw
// paths are never used as label values so /metrics cardinality stays fixed.
type routeLabel struct {
	name string
}

// SetRoute records the matched route name for the metrics middleware. It is
// a no-op when the request did not pass through PrometheusMetrics.
func SetRoute(ctx context.Context, name string) {
	if l, ok := ctx.Value(routeKey{}).(*routeLabel); ok {
		l.name = name
	}
}

// RouteFromContext returns the route set so far, or UnmatchedRoute.
func RouteFromContext(ctx context.Context) string {
	if l, ok := ctx.Value(routeKey{}).(*routeLabel); ok {
		return l.name
	}
	return UnmatchedRoute
}

// PrometheusMetrics records count, latency and in-flight gauge per route.
func PrometheusMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		label := &routeLabel{name: UnmatchedRoute}
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), routeKey{}, label)))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordAPIRequest(r.Method, label.name, strconv.Itoa(status), time.Since(start))
	})
}
