// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package dataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// ErrInvalidLegacyDocument is returned when the legacy file is not JSON.
var ErrInvalidLegacyDocument = errors.New("legacy document is not valid JSON")

// LoadLegacy reads the document served by GET /update. It is read once at
// start-up so a bad path fails the process instead of a request.
func LoadLegacy(path string) ([]byte, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read legacy document: %w", err)
	}
	if !json.Valid(doc) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidLegacyDocument)
	}
	return doc, nil
}
