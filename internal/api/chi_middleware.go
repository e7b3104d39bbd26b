// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"

	"github.com/go-chi/httprate"

	"github.com/lctflights/flightmap/internal/config"
	"github.com/lctflights/flightmap/internal/logging"
	"github.com/lctflights/flightmap/internal/metrics"
	"github.com/lctflights/flightmap/internal/middleware"
)

// RateLimit returns the per-IP limiter shared by the mutation routes. One
// limiter instance backs every handler it wraps, so /post and
// /reports/generate draw from the same budget. When disabled it is a no-op.
func RateLimit(cfg config.UploadConfig) func(http.Handler) http.Handler {
	if cfg.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		cfg.RateLimitReqs,
		cfg.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			route := middleware.RouteFromContext(r.Context())
			metrics.RecordRateLimited(route)
			logging.Ctx(r.Context()).Warn().
				Str("route", route).
				Str("remote_addr", r.RemoteAddr).
				Msg("Rate limit exceeded")
			NewResponseWriter(w, r).TooManyRequests()
		}),
	)
}
