// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package mapview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"github.com/lctflights/flightmap/internal/models"
)

// DefaultStatsPath is the statistics endpoint of a flightmap server.
const DefaultStatsPath = "/flights_percent"

// maxStatsBody bounds how much of a response FetchStats will decode.
const maxStatsBody = 8 << 20

// ErrUnexpectedStatus wraps any non-200 response.
var ErrUnexpectedStatus = errors.New("unexpected status")

// HTTPSource fetches statistics from a running flightmap server.
type HTTPSource struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSource targets baseURL + DefaultStatsPath. A nil client gets a
// 10 second timeout.
func NewHTTPSource(baseURL string, client *http.Client) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPSource{
		endpoint: u.JoinPath(DefaultStatsPath).String(),
		client:   client,
	}, nil
}

// Endpoint is the URL FetchStats requests.
func (s *HTTPSource) Endpoint() string {
	return s.endpoint
}

func (s *HTTPSource) FetchStats(ctx context.Context) (models.MapStats, error) {
	var stats models.MapStats

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, http.NoBody)
	if err != nil {
		return stats, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return stats, fmt.Errorf("fetch %s: %w", s.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return stats, fmt.Errorf("fetch %s: %w %d", s.endpoint, ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxStatsBody)).Decode(&stats); err != nil {
		return stats, fmt.Errorf("decode %s: %w", s.endpoint, err)
	}
	return stats, nil
}
