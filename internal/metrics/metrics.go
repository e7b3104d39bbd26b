// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package metrics holds the Prometheus collectors for the flightmap server.
// All collectors register with the default registry through promauto and are
// exposed on GET /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"route"},
	)

	// Uploads and reports

	UploadSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "upload_size_bytes",
			Help:    "Size of acknowledged upload bodies in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10), // 1KB .. 256MB
		},
	)

	UploadRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upload_rejections_total",
			Help: "Uploads refused before acknowledgement",
		},
		[]string{"reason"}, // "content_type", "too_large", "read_error"
	)

	ReportJobsAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "report_jobs_accepted_total",
			Help: "Report generation requests acknowledged",
		},
	)

	// Static assets

	StaticStreamFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "static_stream_failures_total",
			Help: "Static file streams that failed after headers were committed",
		},
		[]string{"stage"}, // "read", "write"
	)

	// Map painting

	MapRepaints = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "map_repaints_total",
			Help: "Map refreshes by outcome",
		},
		[]string{"outcome"}, // "painted", "fallback"
	)

	MapRegionsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "map_regions_skipped_total",
			Help: "Region elements skipped for a missing or non-numeric id",
		},
	)

	ColorBucketAssignments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "color_bucket_assignments_total",
			Help: "Regions assigned to each color bucket",
		},
		[]string{"bucket"},
	)
)

// RecordAPIRequest records one finished request.
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

func RecordRateLimited(route string) {
	APIRateLimitHits.WithLabelValues(route).Inc()
}

func RecordUpload(size int) {
	UploadSizeBytes.Observe(float64(size))
}

func RecordUploadRejected(reason string) {
	UploadRejections.WithLabelValues(reason).Inc()
}

func RecordReportAccepted() {
	ReportJobsAccepted.Inc()
}

// RecordStaticStreamFailure counts a failure after a 200 was committed.
func RecordStaticStreamFailure(stage string) {
	StaticStreamFailures.WithLabelValues(stage).Inc()
}

// RecordRepaint records the outcome of one map refresh and the number of
// region elements it had to skip.
func RecordRepaint(err error, skipped int) {
	outcome := "painted"
	if err != nil {
		outcome = "fallback"
	}
	MapRepaints.WithLabelValues(outcome).Inc()
	MapRegionsSkipped.Add(float64(skipped))
}

func RecordBucket(bucket string) {
	ColorBucketAssignments.WithLabelValues(bucket).Inc()
}
