// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goccy/go-json"

	"github.com/lctflights/flightmap/internal/config"
	"github.com/lctflights/flightmap/internal/dataset"
)

const testMapSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 20">
  <path class="region" reg-num="23" data-title="Altai" d="M0 0h10v10z"/>
  <path class="region" reg-num="14" data-title="Tomsk" d="M20 0h10v10z"/>
  <path class="region" reg-num="99" data-title="Nowhere" d="M40 0h10v10z"/>
</svg>
`

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            3000,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			Environment:     "development",
		},
		Assets: config.AssetsConfig{
			Root:   "web",
			Index:  "index.html",
			MapSVG: "map.svg",
		},
		CORS: config.CORSConfig{
			AllowOrigin:  "*",
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type", "Authorization"},
		},
		Upload: config.UploadConfig{
			MaxBytes:          1 << 20,
			RateLimitReqs:     60,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
		Logging: config.LoggingConfig{Level: "info", Format: "json"},
	}
}

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"index.html":       {Data: []byte("<!doctype html><title>flightmap</title>")},
		"app.js":           {Data: []byte("console.log('map');")},
		"styles.css":       {Data: []byte("body { margin: 0; }")},
		"map.svg":          {Data: []byte(testMapSVG)},
		"img/logo.PNG":     {Data: []byte{0x89, 'P', 'N', 'G'}},
		"docs/readme.txt":  {Data: []byte("hello")},
		"data/blob.bin":    {Data: []byte{1, 2, 3}},
		"docs/sub/page.md": {Data: []byte("# page")},
	}
}

type routerOption func(cfg *config.Config, opts *[]dataset.Option)

func withLegacy(doc string) routerOption {
	return func(_ *config.Config, opts *[]dataset.Option) {
		*opts = append(*opts, dataset.WithLegacyDocument([]byte(doc)))
	}
}

func withConfig(fn func(*config.Config)) routerOption {
	return func(cfg *config.Config, _ *[]dataset.Option) {
		fn(cfg)
	}
}

func newTestRouter(t *testing.T, options ...routerOption) *Router {
	t.Helper()

	cfg := testConfig()
	var storeOpts []dataset.Option
	for _, o := range options {
		o(cfg, &storeOpts)
	}

	store, err := dataset.New(storeOpts...)
	if err != nil {
		t.Fatalf("dataset.New() error = %v", err)
	}
	router, err := NewRouter(cfg, store, testAssets())
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	return router
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	store, err := dataset.New()
	if err != nil {
		t.Fatalf("dataset.New() error = %v", err)
	}
	return NewHandler(store, testAssets(), testConfig())
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return v
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %q)", rec.Code, status, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentTypeJSON {
		t.Errorf("Content-Type = %q, want %q", ct, ContentTypeJSON)
	}
	body := decode[map[string]string](t, rec)
	if body["error"] != message {
		t.Errorf("error = %q, want %q", body["error"], message)
	}
}
