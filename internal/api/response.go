// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/lctflights/flightmap/internal/logging"
	"github.com/lctflights/flightmap/internal/models"
)

// ContentTypeJSON is set on every JSON response, errors included.
const ContentTypeJSON = "application/json; charset=utf-8"

// ResponseWriter writes the server's JSON bodies for one request.
//
// Usage:
//
//	rw := NewResponseWriter(w, r)
//	rw.JSON(http.StatusOK, stats)
//	rw.BadRequest("page must be at least 1")
type ResponseWriter struct {
	w http.ResponseWriter
	r *http.Request
}

// NewResponseWriter wraps w for the request r.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r}
}

// JSON writes v with the given status.
func (rw *ResponseWriter) JSON(status int, v any) {
	writeJSON(rw.w, rw.r, status, v)
}

// Error writes {"error": message} with the given status.
func (rw *ResponseWriter) Error(status int, message string) {
	writeJSON(rw.w, rw.r, status, models.ErrorBody{Error: message})
}

func (rw *ResponseWriter) BadRequest(message string) {
	rw.Error(http.StatusBadRequest, message)
}

func (rw *ResponseWriter) NotFound(message string) {
	rw.Error(http.StatusNotFound, message)
}

func (rw *ResponseWriter) MethodNotAllowed() {
	rw.Error(http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

func (rw *ResponseWriter) TooLarge() {
	rw.Error(http.StatusRequestEntityTooLarge, msgTooLarge)
}

func (rw *ResponseWriter) TooManyRequests() {
	rw.Error(http.StatusTooManyRequests, msgRateLimited)
}

// InternalError logs err with the request context and writes a 500.
func (rw *ResponseWriter) InternalError(message string, err error) {
	logging.Ctx(rw.r.Context()).Error().Err(err).
		Str("path", rw.r.URL.Path).
		Msg(message)
	rw.Error(http.StatusInternalServerError, message)
}

// writeJSON commits status and encodes v. Encoding failures after the header
// is sent can only be logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).
			Int("status", status).
			Msg("Failed to encode JSON response")
	}
}
