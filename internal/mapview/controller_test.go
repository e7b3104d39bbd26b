// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package mapview

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lctflights/flightmap/internal/colorize"
	"github.com/lctflights/flightmap/internal/models"
)

type stubSource struct {
	stats models.MapStats
	err   error
	calls int
}

func (s *stubSource) FetchStats(context.Context) (models.MapStats, error) {
	s.calls++
	return s.stats, s.err
}

func TestControllerRefreshSuccess(t *testing.T) {
	t.Parallel()

	src := &stubSource{stats: fixtureStats()}
	c := NewController(mustParse(t, sampleSVG), src)

	if err := c.Refresh(t.Context()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}
	if c.Snapshot().Total != 239 {
		t.Errorf("snapshot total = %d, want 239", c.Snapshot().Total)
	}

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "fill: #ff4444") || !strings.Contains(buf.String(), "fill: #ffff00") {
		t.Errorf("rendered map not painted: %s", buf.String())
	}

	hover, ok := c.Hover("14")
	if !ok || hover != "Томская область (14)" {
		t.Errorf("Hover(14) = %q, %v", hover, ok)
	}
	d, ok := c.Click("14")
	if !ok || !d.HasData || d.Metrics.TotalFlights != 89 {
		t.Errorf("Click(14) = %+v, %v", d, ok)
	}
	if _, ok := c.Click("999"); ok {
		t.Error("Click on an element not in the map should report false")
	}
}

func TestControllerRefreshFailurePaintsNeutral(t *testing.T) {
	t.Parallel()

	src := &stubSource{stats: fixtureStats()}
	m := mustParse(t, sampleSVG)
	c := NewController(m, src)

	if err := c.Refresh(t.Context()); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("connection refused")
	src.err = boom
	err := c.Refresh(t.Context())
	if !errors.Is(err, boom) {
		t.Fatalf("Refresh() error = %v, want wrapped %v", err, boom)
	}
	if src.calls != 2 {
		t.Errorf("source called %d times, want 2 (no retry)", src.calls)
	}

	for _, r := range m.Regions() {
		if r.Fill() != colorize.NeutralColor {
			t.Errorf("region %s fill = %q after failure, want neutral", r.ID, r.Fill())
		}
	}
	if c.Snapshot().Total != 0 {
		t.Error("failed refresh must not keep the old snapshot")
	}
	if d, _ := c.Click("23"); d.HasData || d.HasPercent {
		t.Errorf("Click after failure = %+v, want no data", d)
	}
}

func TestHTTPSource(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != DefaultStatsPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"period":{"start_date":"2024-01-01","end_date":"2024-01-31"},"regions":{"23":{"total_flights":150}}}`))
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.URL, srv.Client())
	if err != nil {
		t.Fatal(err)
	}
	stats, err := src.FetchStats(t.Context())
	if err != nil {
		t.Fatalf("FetchStats() error = %v", err)
	}
	if stats.Regions["23"].TotalFlights != 150 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestHTTPSourceErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.URL, srv.Client())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.FetchStats(t.Context()); !errors.Is(err, ErrUnexpectedStatus) {
		t.Errorf("FetchStats() error = %v, want ErrUnexpectedStatus", err)
	}

	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer garbage.Close()

	src, _ = NewHTTPSource(garbage.URL, garbage.Client())
	if _, err := src.FetchStats(t.Context()); err == nil {
		t.Error("FetchStats() should fail on a non-JSON body")
	}

	if _, err := NewHTTPSource("ftp://example.org", nil); err == nil {
		t.Error("NewHTTPSource should reject non-http schemes")
	}
}
