// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package validation

import (
	"errors"
	"strings"
	"testing"
)

type pageQuery struct {
	Page  int    `query:"page" validate:"min=1"`
	Limit int    `query:"limit" validate:"min=1,max=100"`
	Level string `koanf:"level" validate:"omitempty,loglevel"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        pageQuery
		wantField string
		wantMsg   string
	}{
		{"valid", pageQuery{Page: 1, Limit: 20}, "", ""},
		{"page zero", pageQuery{Page: 0, Limit: 20}, "page", "page must be at least 1"},
		{"limit too high", pageQuery{Page: 1, Limit: 101}, "limit", "limit must be at most 100"},
		{"bad level", pageQuery{Page: 1, Limit: 1, Level: "loud"}, "level", "level must be one of"},
		{"good level", pageQuery{Page: 1, Limit: 1, Level: "debug"}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.in)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var fe FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldErrors, got %T (%v)", err, err)
			}
			if !fe.Has(tt.wantField) {
				t.Errorf("expected error on %q, got %v", tt.wantField, fe)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("message %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestFieldErrorsJoin(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&pageQuery{Page: 0, Limit: 0})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "page") || !strings.Contains(msg, "limit") || !strings.Contains(msg, "; ") {
		t.Errorf("expected both fields joined, got %q", msg)
	}
	if FieldErrors(nil).Error() != "validation failed" {
		t.Error("empty FieldErrors should have a generic message")
	}
}
