// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package models

// ErrorBody is the only error shape the server emits.
type ErrorBody struct {
	Error string `json:"error"`
}

// UploadAck acknowledges POST /post. Size is the raw body length in bytes.
type UploadAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Size    int    `json:"size"`
}

// ReportAck acknowledges POST /reports/generate. The job is not tracked
// and the ID cannot be queried later.
type ReportAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
}

type HealthStatus struct {
	Status string `json:"status"`
}

// RegionColor is the colorizer verdict for one region.
type RegionColor struct {
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
	Bucket  string  `json:"bucket"`
	Color   string  `json:"color"`
}

// ScaleStep is one threshold of the color scale, highest first.
type ScaleStep struct {
	Bucket     string  `json:"bucket"`
	MinPercent float64 `json:"min_percent"`
	Color      string  `json:"color"`
}

// ColorMap is the body of GET /map/colors.
type ColorMap struct {
	Total   int64                  `json:"total"`
	Scale   []ScaleStep            `json:"scale"`
	Regions map[string]RegionColor `json:"regions"`
}
