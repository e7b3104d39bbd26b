// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package config loads the flightmap server configuration.
//
// Sources are layered with koanf, lowest priority first:
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file: $CONFIG_PATH, else config.yaml or config.yml
//  3. Environment variables listed in envMappings
//
// Every key is optional; the defaults start a working development server
// on port 3000 serving ./web.
package config

import (
	"strings"
	"time"
)

// Config is the complete server configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Assets  AssetsConfig  `koanf:"assets"`
	CORS    CORSConfig    `koanf:"cors"`
	Upload  UploadConfig  `koanf:"upload"`
	Data    DataConfig    `koanf:"data"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment" validate:"oneof=development dev staging production prod"`
}

// AssetsConfig locates the static front-end bundle.
type AssetsConfig struct {
	// Root is the directory served for GET requests no API route claims.
	Root string `koanf:"root" validate:"required"`
	// Index is served for "/".
	Index string `koanf:"index" validate:"required"`
	// MapSVG is the region map, relative to Root, painted by /map/painted.svg.
	MapSVG string `koanf:"map_svg" validate:"required"`
}

// CORSConfig holds the three headers written on every response.
type CORSConfig struct {
	AllowOrigin  string   `koanf:"allow_origin" validate:"required"`
	AllowMethods []string `koanf:"allow_methods" validate:"min=1"`
	AllowHeaders []string `koanf:"allow_headers"`
}

// UploadConfig bounds the two mutation endpoints.
type UploadConfig struct {
	MaxBytes          int64         `koanf:"max_bytes" validate:"gt=0"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

type DataConfig struct {
	// LegacyUpdatePath points at a JSON document served verbatim by GET
	// /update. Empty leaves the route unregistered.
	LegacyUpdatePath string `koanf:"legacy_update_path"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"loglevel"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from all sources and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr is the listen address for http.Server.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// MethodsHeader is the Access-Control-Allow-Methods value.
func (c CORSConfig) MethodsHeader() string {
	return strings.Join(c.AllowMethods, ", ")
}

// HeadersHeader is the Access-Control-Allow-Headers value.
func (c CORSConfig) HeadersHeader() string {
	return strings.Join(c.AllowHeaders, ", ")
}
