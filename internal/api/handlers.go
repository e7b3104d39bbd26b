// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"io/fs"

	"github.com/lctflights/flightmap/internal/colorize"
	"github.com/lctflights/flightmap/internal/config"
	"github.com/lctflights/flightmap/internal/dataset"
)

// Handler holds the read-only state shared by all route handlers. Nothing
// in it is mutated after construction.
type Handler struct {
	store  *dataset.Store
	assets fs.FS
	cfg    *config.Config
	scale  colorize.Scale
}

// NewHandler creates a handler set over store and assets.
func NewHandler(store *dataset.Store, assets fs.FS, cfg *config.Config) *Handler {
	return &Handler{
		store:  store,
		assets: assets,
		cfg:    cfg,
		scale:  colorize.DefaultScale,
	}
}
