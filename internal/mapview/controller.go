// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package mapview

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lctflights/flightmap/internal/colorize"
	"github.com/lctflights/flightmap/internal/logging"
	"github.com/lctflights/flightmap/internal/metrics"
	"github.com/lctflights/flightmap/internal/models"
)

// Source supplies the statistics a refresh paints from.
type Source interface {
	FetchStats(ctx context.Context) (models.MapStats, error)
}

// Controller owns a Map and the Snapshot it was last painted from.
// Refreshes are serialized; each one fetches exactly once and never
// retries.
type Controller struct {
	source Source
	logger zerolog.Logger

	mu       sync.Mutex
	m        *Map
	snapshot Snapshot
}

// NewController paints m from source on each Refresh.
func NewController(m *Map, source Source) *Controller {
	return &Controller{
		source: source,
		logger: logging.WithComponent("mapview"),
		m:      m,
	}
}

// Refresh fetches the statistics once. On success the snapshot is replaced
// wholesale and every region repainted. On failure every region is painted
// with the neutral color, the snapshot is cleared, and the error returned.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, err := c.source.FetchStats(ctx)
	if err != nil {
		c.m.PaintUniform(colorize.NeutralColor)
		c.snapshot = Snapshot{}
		metrics.RecordRepaint(err, c.m.Skipped())
		c.logger.Warn().Err(err).Msg("Map refresh failed, painted neutral")
		return fmt.Errorf("refresh map: %w", err)
	}

	c.snapshot = NewSnapshot(stats)
	results := c.snapshot.Results()
	c.m.Paint(results)
	for _, r := range results {
		metrics.RecordBucket(r.Bucket.String())
	}
	metrics.RecordRepaint(nil, c.m.Skipped())

	c.logger.Debug().
		Int("regions", len(results)).
		Int64("total_flights", c.snapshot.Total).
		Int("skipped_elements", c.m.Skipped()).
		Msg("Map repainted")
	return nil
}

// Snapshot returns the data behind the current paint.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// Hover returns the hover text for the region with the given id.
func (c *Controller) Hover(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.m.Lookup(id)
	if !ok {
		return "", false
	}
	return HoverText(r), true
}

// Click returns the details panel for the region with the given id.
func (c *Controller) Click(id string) (Details, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.m.Lookup(id)
	if !ok {
		return Details{}, false
	}
	return c.snapshot.Details(r), true
}

// Render writes the currently painted map.
func (c *Controller) Render(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m.Render(w)
}
