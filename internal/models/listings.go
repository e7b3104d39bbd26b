// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

import "time"

// Flight is one recorded UAV flight.
type Flight struct {
	RegionID        int       `json:"region_id"`
	TimestampStart  time.Time `json:"timestamp_start"`
	TimestampEnd    time.Time `json:"timestamp_end"`
	DurationSeconds int64     `json:"duration_seconds"`
	DistanceMeters  int64     `json:"distance_meters"`
	Status          string    `json:"status"`
	Violations      []string  `json:"violations"`
	OperatorID      string    `json:"operator_id"`
	OperatorName    string    `json:"operator_name"`
	DroneModel      string    `json:"drone_model"`
	DroneSerial     string    `json:"drone_serial"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// FlightsPage is the body of GET /flights.
type FlightsPage struct {
	Flights    []Flight   `json:"flights"`
	Pagination Pagination `json:"pagination"`
}

type RegionInfo struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	AreaSqKm int64  `json:"area_sq_km"`
}

// RegionsCatalog is the body of GET /regions.
type RegionsCatalog struct {
	Regions    map[string]RegionInfo `json:"regions"`
	TotalCount int                   `json:"total_count"`
}
