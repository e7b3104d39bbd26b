// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lctflights/flightmap/internal/logging"
	"github.com/lctflights/flightmap/internal/metrics"
	"github.com/lctflights/flightmap/internal/models"
)

const (
	multipartFormData = "multipart/form-data"

	// reportStatusProcessing is the only status a report job ever reports.
	reportStatusProcessing = "processing"

	// maxLoggedBody caps how much of a report request is copied into logs.
	maxLoggedBody = 1024
)

// Upload acknowledges a multipart upload. The body is read in full and
// counted; nothing is parsed or stored.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if !strings.Contains(r.Header.Get("Content-Type"), multipartFormData) {
		metrics.RecordUploadRejected("content_type")
		rw.BadRequest(msgMultipartOnly)
		return
	}

	body, err := h.readBody(w, r)
	if err != nil {
		h.rejectBody(rw, err)
		return
	}

	metrics.RecordUpload(len(body))
	logging.Ctx(r.Context()).Info().Int("size", len(body)).Msg("Upload received")

	rw.JSON(http.StatusOK, models.UploadAck{
		Success: true,
		Message: msgUploadOK,
		Size:    len(body),
	})
}

// GenerateReport acknowledges a report request. The body is logged as text;
// no job is scheduled and the returned ID cannot be queried.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	body, err := h.readBody(w, r)
	if err != nil {
		h.rejectBody(rw, err)
		return
	}

	jobID := fmt.Sprintf("report_%d", time.Now().UnixMilli())
	metrics.RecordReportAccepted()
	logging.Ctx(r.Context()).Info().
		Str("job_id", jobID).
		Str("body", truncate(string(body), maxLoggedBody)).
		Msg("Report generation requested")

	rw.JSON(http.StatusOK, models.ReportAck{
		Success: true,
		Message: msgReportQueued,
		JobID:   jobID,
		Status:  reportStatusProcessing,
	})
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.Upload.MaxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func (h *Handler) rejectBody(rw *ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		metrics.RecordUploadRejected("too_large")
		rw.TooLarge()
		return
	}
	metrics.RecordUploadRejected("read_error")
	logging.Ctx(rw.r.Context()).Warn().Err(err).Msg("Failed to read request body")
	rw.BadRequest(msgReadBody)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
