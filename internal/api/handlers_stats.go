// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"
	"strconv"

	"github.com/lctflights/flightmap/internal/logging"
)

// fallbackRegionID is used when the captured digits overflow int.
const fallbackRegionID = 1

// MapStats serves the per-region statistics for the current period.
func (h *Handler) MapStats(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).JSON(http.StatusOK, h.store.MapStats())
}

// Flights serves one page of the flight listing.
func (h *Handler) Flights(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseFlightsRequest(r.URL.Query())
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	rw.JSON(http.StatusOK, h.store.Flights(req.Page, req.Limit))
}

// LegacyUpdate serves the configured legacy document verbatim. It is only
// registered when a document is loaded; the nil check covers direct calls.
func (h *Handler) LegacyUpdate(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.store.LegacyDocument()
	if !ok {
		NewResponseWriter(w, r).NotFound(msgNotFound)
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to write legacy document")
	}
}

// RegionAnalytics serves the analytics document relabelled with the region
// ID captured from the path.
func (h *Handler) RegionAnalytics(w http.ResponseWriter, r *http.Request) {
	regionID, err := strconv.Atoi(PathParam(r, 0))
	if err != nil {
		regionID = fallbackRegionID
	}
	NewResponseWriter(w, r).JSON(http.StatusOK, h.store.RegionAnalytics(regionID))
}

// Regions serves the region catalog.
func (h *Handler) Regions(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).JSON(http.StatusOK, h.store.Regions())
}
