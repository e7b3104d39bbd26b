// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lctflights/flightmap/internal/validation"
)

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Validate applies the struct tag rules, then the cross-field rules the
// tags cannot express.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateCORS()
}

func (c *Config) validateRateLimits() error {
	if c.Upload.RateLimitDisabled {
		return nil
	}
	if c.Upload.RateLimitReqs < minRateLimitRequests || c.Upload.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Upload.RateLimitWindow < minRateLimitWindow || c.Upload.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateCORS rejects header values that would split the response.
func (c *Config) validateCORS() error {
	values := append([]string{c.CORS.AllowOrigin}, c.CORS.AllowMethods...)
	values = append(values, c.CORS.AllowHeaders...)
	for _, v := range values {
		if strings.ContainsAny(v, "\r\n") {
			return fmt.Errorf("CORS values must not contain line breaks: %q", v)
		}
	}
	return nil
}

// IsProduction reports whether server.environment names production.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// ShouldWarnAboutCORS is true for a wildcard origin in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.CORS.AllowOrigin == "*"
}
