// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"
	"testing"

	"github.com/lctflights/flightmap/internal/models"
)

func TestMapStatsServesBothPaths(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	primary := do(t, router, http.MethodGet, "/flights_percent", nil, "")
	legacy := do(t, router, http.MethodGet, "/map/stats", nil, "")

	if primary.Body.String() != legacy.Body.String() {
		t.Errorf("legacy alias body differs:\n%s\n%s", primary.Body.String(), legacy.Body.String())
	}
	if ct := primary.Header().Get("Content-Type"); ct != ContentTypeJSON {
		t.Errorf("Content-Type = %q", ct)
	}

	stats := decode[models.MapStats](t, primary)
	if got := stats.Regions["23"].TotalFlights; got != 150 {
		t.Errorf("region 23 total_flights = %d, want 150", got)
	}
	if stats.Period.StartDate != "2024-01-01" {
		t.Errorf("period = %+v", stats.Period)
	}
}

func TestRegionAnalyticsUsesPathID(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	tests := []struct {
		path string
		want int
	}{
		{"/regions/42/analytics", 42},
		{"/regions/007/analytics", 7},
		{"/regions/99999999999999999999999/analytics", fallbackRegionID},
	}
	for _, tt := range tests {
		rec := do(t, router, http.MethodGet, tt.path, nil, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d", tt.path, rec.Code)
		}
		got := decode[models.RegionAnalytics](t, rec)
		if got.RegionID != tt.want {
			t.Errorf("GET %s region_id = %d, want %d", tt.path, got.RegionID, tt.want)
		}
	}
}

func TestRegionsCatalog(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestRouter(t), http.MethodGet, "/regions", nil, "")
	catalog := decode[models.RegionsCatalog](t, rec)
	if catalog.TotalCount != len(catalog.Regions) || catalog.TotalCount == 0 {
		t.Errorf("catalog = %+v", catalog)
	}
}

func TestFlightsPagination(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/flights", nil, "")
	page := decode[models.FlightsPage](t, rec)
	if page.Pagination.Page != 1 || page.Pagination.Limit != 20 {
		t.Errorf("defaults = %+v", page.Pagination)
	}
	if len(page.Flights) != page.Pagination.TotalCount {
		t.Errorf("flights = %d, total = %d", len(page.Flights), page.Pagination.TotalCount)
	}

	rec = do(t, router, http.MethodGet, "/flights?page=50&limit=5", nil, "")
	page = decode[models.FlightsPage](t, rec)
	if len(page.Flights) != 0 || page.Pagination.Page != 50 || page.Pagination.Limit != 5 {
		t.Errorf("past-the-end page = %+v", page)
	}
}

func TestFlightsRejectsInvalidQuery(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	tests := []struct {
		target, message string
	}{
		{"/flights?page=0", "page must be at least 1"},
		{"/flights?limit=0", "limit must be at least 1"},
		{"/flights?limit=101", "limit must be at most 100"},
		{"/flights?page=two", "page must be an integer"},
		{"/flights?limit=1.5", "limit must be an integer"},
	}
	for _, tt := range tests {
		assertErrorBody(t, do(t, router, http.MethodGet, tt.target, nil, ""), http.StatusBadRequest, tt.message)
	}
}
