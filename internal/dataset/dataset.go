// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package dataset serves the fixed statistics behind the flightmap API.
//
// The fixtures are embedded JSON decoded once by New. A Store is read-only
// after construction and safe for concurrent use; accessors hand out
// values, and callers must not mutate the maps inside them.
package dataset

import (
	"context"
	"embed"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/lctflights/flightmap/internal/models"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Store holds the decoded fixtures and the optional legacy document.
type Store struct {
	mapStats  models.MapStats
	analytics models.RegionAnalytics
	flights   []models.Flight
	regions   map[string]models.RegionInfo
	legacy    []byte
}

// Option configures a Store.
type Option func(*Store)

// WithLegacyDocument serves doc from GET /update. doc must already be valid
// JSON; LoadLegacy checks that.
func WithLegacyDocument(doc []byte) Option {
	return func(s *Store) {
		s.legacy = doc
	}
}

// New decodes the embedded fixtures.
func New(opts ...Option) (*Store, error) {
	s := &Store{}
	for _, f := range []struct {
		name string
		dst  any
	}{
		{"map_stats.json", &s.mapStats},
		{"region_analytics.json", &s.analytics},
		{"flights.json", &s.flights},
		{"regions.json", &s.regions},
	} {
		if err := decodeFixture(f.name, f.dst); err != nil {
			return nil, err
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func decodeFixture(name string, dst any) error {
	raw, err := fixtures.ReadFile("fixtures/" + name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}

// MapStats returns the per-region statistics for the reporting period.
func (s *Store) MapStats() models.MapStats {
	return s.mapStats
}

// FetchStats lets a Store feed a map refresh in-process.
func (s *Store) FetchStats(context.Context) (models.MapStats, error) {
	return s.mapStats, nil
}

// RegionAnalytics returns the analytics record relabelled with regionID.
// Every region shares the same figures.
func (s *Store) RegionAnalytics(regionID int) models.RegionAnalytics {
	a := s.analytics
	a.RegionID = regionID
	return a
}

// Flights returns one page of the flight listing. Pages past the end are
// empty but still report the totals.
func (s *Store) Flights(page, limit int) models.FlightsPage {
	total := len(s.flights)
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	out := models.FlightsPage{
		Flights: []models.Flight{},
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: totalPages,
		},
	}
	if page < 1 || limit < 1 {
		return out
	}

	start := (page - 1) * limit
	if start >= total {
		return out
	}
	end := min(start+limit, total)
	out.Flights = append(out.Flights, s.flights[start:end]...)
	return out
}

// Regions returns the region catalog.
func (s *Store) Regions() models.RegionsCatalog {
	return models.RegionsCatalog{
		Regions:    s.regions,
		TotalCount: len(s.regions),
	}
}

// LegacyDocument returns the document for GET /update and whether one is
// configured.
func (s *Store) LegacyDocument() ([]byte, bool) {
	return s.legacy, s.legacy != nil
}
