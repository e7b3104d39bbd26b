// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import "errors"

// Sentinel errors for the HTTP layer.
var (
	// ErrNilConfig is returned by NewRouter when no configuration is supplied.
	ErrNilConfig = errors.New("api: configuration is required")

	// ErrNilStore is returned by NewRouter when no dataset is supplied.
	ErrNilStore = errors.New("api: dataset store is required")

	// ErrNilAssets is returned by NewRouter when no asset file system is supplied.
	ErrNilAssets = errors.New("api: asset file system is required")

	// ErrNotRegularFile marks a static path that exists but is not a file.
	ErrNotRegularFile = errors.New("api: not a regular file")
)

// Client-facing messages. Kept in one place so tests can match them.
const (
	msgNotFound         = "Endpoint not found"
	msgFileNotFound     = "File not found"
	msgMethodNotAllowed = "Method not supported"
	msgMultipartOnly    = "Only multipart/form-data is supported"
	msgTooLarge         = "Request body too large"
	msgRateLimited      = "Too many requests, please retry later"
	msgReadBody         = "Failed to read request body"
	msgReadFile         = "Error reading file"
	msgMapUnavailable   = "Region map is unavailable"
	msgUploadOK         = "File uploaded successfully via /post"
	msgReportQueued     = "Report queued for generation"
)
