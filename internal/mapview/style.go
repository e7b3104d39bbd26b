// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package mapview

import (
	"strings"

	"golang.org/x/net/html"
)

type declaration struct {
	name  string
	value string
}

// parseStyle splits an inline style attribute into declarations, dropping
// empty and malformed entries.
func parseStyle(style string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		decls = append(decls, declaration{name: strings.ToLower(name), value: strings.TrimSpace(value)})
	}
	return decls
}

func formatStyle(decls []declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.name + ": " + d.value
	}
	return strings.Join(parts, "; ")
}

func styleProperty(style, name string) (string, bool) {
	for _, d := range parseStyle(style) {
		if d.name == name {
			return d.value, true
		}
	}
	return "", false
}

// setStyleProperty replaces name in place or appends it.
func setStyleProperty(n *html.Node, name, value string) {
	decls := parseStyle(attr(n, "style"))
	found := false
	for i := range decls {
		if decls[i].name == name {
			decls[i].value = value
			found = true
		}
	}
	if !found {
		decls = append(decls, declaration{name: name, value: value})
	}
	setAttr(n, "style", formatStyle(decls))
}
