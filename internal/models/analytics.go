// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

// RegionAnalytics is the body of GET /regions/{id}/analytics.
type RegionAnalytics struct {
	RegionID           int                `json:"region_id"`
	RegionName         string             `json:"region_name"`
	Period             Period             `json:"period"`
	Summary            AnalyticsSummary   `json:"summary"`
	Trends             Trends             `json:"trends"`
	ByOperator         []OperatorStats    `json:"by_operator"`
	ByDroneModel       []DroneModelStats  `json:"by_drone_model"`
	ViolationsAnalysis ViolationsAnalysis `json:"violations_analysis"`
}

// AnalyticsSummary extends RegionMetrics with the average flight duration.
type AnalyticsSummary struct {
	TotalFlights         int64   `json:"total_flights"`
	SuccessfulFlights    int64   `json:"successful_flights"`
	FailedFlights        int64   `json:"failed_flights"`
	TotalDurationSeconds int64   `json:"total_duration_seconds"`
	TotalDistanceMeters  int64   `json:"total_distance_meters"`
	AvgFlightDuration    int64   `json:"avg_flight_duration"`
	ViolationsCount      int64   `json:"violations_count"`
	SuccessRate          float64 `json:"success_rate"`
}

// Trends keys flights_by_day on YYYY-MM-DD and flights_by_hour on "0".."23".
type Trends struct {
	FlightsByDay  map[string]int64 `json:"flights_by_day"`
	FlightsByHour map[string]int64 `json:"flights_by_hour"`
}

type OperatorStats struct {
	OperatorID   string  `json:"operator_id"`
	OperatorName string  `json:"operator_name"`
	FlightsCount int64   `json:"flights_count"`
	SuccessRate  float64 `json:"success_rate"`
	AvgDuration  int64   `json:"avg_duration"`
}

type DroneModelStats struct {
	Model           string  `json:"model"`
	FlightsCount    int64   `json:"flights_count"`
	UsagePercentage float64 `json:"usage_percentage"`
}

type ViolationsAnalysis struct {
	ByType     map[string]int64 `json:"by_type"`
	BySeverity map[string]int64 `json:"by_severity"`
	Trend      map[string]int64 `json:"trend"`
}
