// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/lctflights/flightmap/internal/validation"
)

// Flights listing defaults.
const (
	defaultFlightsPage  = 1
	defaultFlightsLimit = 20
)

// FlightsRequest holds the validated query parameters of GET /flights.
type FlightsRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

// parseFlightsRequest reads page and limit from q. Absent or empty values
// take the defaults; anything else must be an integer within bounds.
func parseFlightsRequest(q url.Values) (FlightsRequest, error) {
	req := FlightsRequest{Page: defaultFlightsPage, Limit: defaultFlightsLimit}

	var err error
	if req.Page, err = intParam(q, "page", req.Page); err != nil {
		return req, err
	}
	if req.Limit, err = intParam(q, "limit", req.Limit); err != nil {
		return req, err
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return req, err
	}
	return req, nil
}

func intParam(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}
