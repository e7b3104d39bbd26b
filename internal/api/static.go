// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/goccy/go-json"

	"github.com/lctflights/flightmap/internal/logging"
	"github.com/lctflights/flightmap/internal/metrics"
	"github.com/lctflights/flightmap/internal/models"
)

const (
	defaultContentType = "application/octet-stream"
	streamChunkSize    = 32 * 1024
)

// mimeTypes is the complete extension table for static assets.
var mimeTypes = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".txt":  "text/plain",
}

// ContentTypeFor returns the MIME type for name by extension.
func ContentTypeFor(name string) string {
	if ct, ok := mimeTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return defaultContentType
}

// Static serves a file from the asset root. "/" maps to the index
// document. Once the file is opened and known to be regular, 200 is
// committed and the content streamed; later failures cannot change the
// status.
func (h *Handler) Static(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	name, ok := assetName(r.URL.Path, h.cfg.Assets.Index)
	if !ok {
		rw.NotFound(msgFileNotFound)
		return
	}

	f, err := h.openRegular(name)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Str("asset", name).Msg("Static asset not served")
		rw.NotFound(msgFileNotFound)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", ContentTypeFor(name))
	w.WriteHeader(http.StatusOK)
	streamFile(w, r, f, name)
}

// assetName converts a request path into an fs.FS name.
func assetName(urlPath, index string) (string, bool) {
	if urlPath == "/" || urlPath == "" {
		return index, true
	}
	name := strings.TrimPrefix(urlPath, "/")
	if !fs.ValidPath(name) {
		return "", false
	}
	return name, true
}

func (h *Handler) openRegular(name string) (fs.File, error) {
	f, err := h.assets.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open asset: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat asset: %w", err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, ErrNotRegularFile
	}
	return f, nil
}

// streamFile copies f to w after headers are committed. A read failure
// appends a JSON error to what was already sent.
func streamFile(w http.ResponseWriter, r *http.Request, f io.Reader, name string) {
	logger := logging.Ctx(r.Context())
	buf := make([]byte, streamChunkSize)

	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				metrics.RecordStaticStreamFailure("write")
				logger.Warn().Err(err).Str("asset", name).Msg("Client write failed during static stream")
				return
			}
		}
		if errors.Is(readErr, io.EOF) {
			return
		}
		if readErr != nil {
			metrics.RecordStaticStreamFailure("read")
			logger.Error().Err(readErr).Str("asset", name).Msg("Read failed during static stream")
			if err := json.NewEncoder(w).Encode(models.ErrorBody{Error: msgReadFile}); err != nil {
				logger.Warn().Err(err).Msg("Failed to append stream error")
			}
			return
		}
	}
}

// NotFound is the POST fallthrough.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).NotFound(msgNotFound)
}

// MethodNotAllowed is the fallthrough for methods other than GET, POST and
// OPTIONS.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).MethodNotAllowed()
}

// Preflight answers OPTIONS on any path. CORS headers are already set.
func (h *Handler) Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
