// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

// Period is an inclusive reporting window in YYYY-MM-DD form.
type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// RegionMetrics is the metrics bag for one region and period.
type RegionMetrics struct {
	TotalFlights         int64   `json:"total_flights,omitempty"`
	SuccessfulFlights    int64   `json:"successful_flights,omitempty"`
	FailedFlights        int64   `json:"failed_flights,omitempty"`
	TotalDurationSeconds int64   `json:"total_duration_seconds,omitempty"`
	TotalDistanceMeters  int64   `json:"total_distance_meters,omitempty"`
	ViolationsCount      int64   `json:"violations_count,omitempty"`
	SuccessRate          float64 `json:"success_rate,omitempty"`
}

// MapStats is the body of GET /flights_percent.
type MapStats struct {
	Period  Period                   `json:"period"`
	Regions map[string]RegionMetrics `json:"regions"`
}

// Counts projects the flight counts the colorizer works on. Regions are
// never dropped, so a region with no flights still appears with count 0.
func (m MapStats) Counts() map[string]int64 {
	counts := make(map[string]int64, len(m.Regions))
	for id, r := range m.Regions {
		counts[id] = r.TotalFlights
	}
	return counts
}

// Lookup returns the metrics for id and whether the region has data.
func (m MapStats) Lookup(id string) (RegionMetrics, bool) {
	r, ok := m.Regions[id]
	return r, ok
}
