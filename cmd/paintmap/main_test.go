// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lctflights/flightmap/internal/colorize"
	"github.com/lctflights/flightmap/internal/mapview"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg">
  <path class="region" reg-num="23" data-title="Altai" d="M0 0h10v10z"/>
  <path class="region" reg-num="14" data-title="Tomsk" d="M20 0h10v10z"/>
</svg>`

const testStats = `{
  "period": {"start_date": "2024-01-01", "end_date": "2024-01-31"},
  "regions": {
    "23": {"total_flights": 150, "successful_flights": 148, "failed_flights": 2, "violations_count": 5, "success_rate": 98.7},
    "14": {"total_flights": 89}
  }
}`

func writeSVG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.svg")
	if err := os.WriteFile(path, []byte(testSVG), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func statsServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != mapview.DefaultStatsPath {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(testStats))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func fills(t *testing.T, svg []byte) map[string]string {
	t.Helper()
	m, err := mapview.Parse(bytes.NewReader(svg))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	out := map[string]string{}
	for _, r := range m.Regions() {
		out[r.ID] = r.Fill()
	}
	return out
}

func TestRunPaintsFromServer(t *testing.T) {
	srv := statsServer(t, http.StatusOK)
	var stdout, stderr bytes.Buffer

	err := run(t.Context(), []string{"-url", srv.URL, "-svg", writeSVG(t), "-region", "23"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v (stderr %s)", err, stderr.String())
	}

	got := fills(t, stdout.Bytes())
	if got["23"] != colorize.Critical.Color() {
		t.Errorf("region 23 fill = %q", got["23"])
	}
	if got["14"] != colorize.Moderate.Color() {
		t.Errorf("region 14 fill = %q", got["14"])
	}

	out := stderr.String()
	if !strings.Contains(out, "hover: Altai (23)") {
		t.Errorf("stderr missing hover text:\n%s", out)
	}
	if !strings.Contains(out, "Flights: 150") {
		t.Errorf("stderr missing details:\n%s", out)
	}
}

func TestRunFallsBackToNeutral(t *testing.T) {
	srv := statsServer(t, http.StatusInternalServerError)
	outPath := filepath.Join(t.TempDir(), "painted.svg")
	var stdout, stderr bytes.Buffer

	err := run(t.Context(), []string{"-url", srv.URL, "-svg", writeSVG(t), "-out", outPath}, &stdout, &stderr)
	if err == nil || !errors.Is(err, mapview.ErrUnexpectedStatus) {
		t.Fatalf("run() error = %v, want ErrUnexpectedStatus", err)
	}

	data, readErr := os.ReadFile(outPath)
	if readErr != nil {
		t.Fatalf("output not written: %v", readErr)
	}
	for id, fill := range fills(t, data) {
		if fill != colorize.NeutralColor {
			t.Errorf("region %s fill = %q, want neutral", id, fill)
		}
	}
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if err := run(t.Context(), nil, &stdout, &stderr); !errors.Is(err, errUsage) {
		t.Errorf("missing -svg error = %v", err)
	}
	if err := run(t.Context(), []string{"-nope"}, &stdout, &stderr); !errors.Is(err, errUsage) {
		t.Errorf("unknown flag error = %v", err)
	}

	srv := statsServer(t, http.StatusOK)
	err := run(t.Context(), []string{"-url", srv.URL, "-svg", writeSVG(t), "-region", "77"}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), `"77"`) {
		t.Errorf("unknown region error = %v", err)
	}
}
