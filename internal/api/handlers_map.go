// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/lctflights/flightmap/internal/logging"
	"github.com/lctflights/flightmap/internal/mapview"
	"github.com/lctflights/flightmap/internal/metrics"
	"github.com/lctflights/flightmap/internal/models"
)

const contentTypeSVG = "image/svg+xml"

// MapColors serves the colorizer verdict for every region with data,
// alongside the scale that produced it.
func (h *Handler) MapColors(w http.ResponseWriter, r *http.Request) {
	total, results := h.scale.Breakdown(h.store.MapStats().Counts())

	out := models.ColorMap{
		Total:   total,
		Scale:   make([]models.ScaleStep, len(h.scale)),
		Regions: make(map[string]models.RegionColor, len(results)),
	}
	for i, step := range h.scale {
		out.Scale[i] = models.ScaleStep{
			Bucket:     step.Bucket.String(),
			MinPercent: step.MinPercent,
			Color:      step.Bucket.Color(),
		}
	}
	for id, res := range results {
		bucket := res.Bucket.String()
		metrics.RecordBucket(bucket)
		out.Regions[id] = models.RegionColor{
			Count:   res.Count,
			Percent: res.Percent,
			Bucket:  bucket,
			Color:   res.Color(),
		}
	}

	NewResponseWriter(w, r).JSON(http.StatusOK, out)
}

// MapPainted parses the region map from the asset root, paints it from the
// current statistics and serves the result. Each request works on its own
// parsed copy.
func (h *Handler) MapPainted(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	m, err := h.loadMap()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			rw.NotFound(msgFileNotFound)
			return
		}
		rw.InternalError(msgMapUnavailable, err)
		return
	}

	ctrl := mapview.NewController(m, h.store)
	if err := ctrl.Refresh(r.Context()); err != nil {
		// The neutral paint is still a valid map.
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Serving neutral map")
	}

	var buf bytes.Buffer
	if err := ctrl.Render(&buf); err != nil {
		rw.InternalError(msgMapUnavailable, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeSVG)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to write painted map")
	}
}

func (h *Handler) loadMap() (*mapview.Map, error) {
	f, err := h.assets.Open(h.cfg.Assets.MapSVG)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", h.cfg.Assets.MapSVG, err)
	}
	defer f.Close()

	m, err := mapview.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", h.cfg.Assets.MapSVG, err)
	}
	return m, nil
}
