// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lctflights/flightmap/internal/models"
)

// Health reports liveness. The dataset is embedded, so there is nothing
// external to probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).JSON(http.StatusOK, models.HealthStatus{Status: "ok"})
}

// Metrics serves the default Prometheus registry.
func (h *Handler) Metrics() http.Handler {
	return promhttp.Handler()
}
