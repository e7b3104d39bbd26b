// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package mapview paints the SVG region map and produces the hover and
// click texts shown next to it.
//
// A region is a <path class="region"> element carrying its number in
// reg-num and its display name in data-title:
//
//	<path class="region" reg-num="23" data-title="Алтайская область" d="..."/>
//
// Painting only ever writes the fill property of the element's style
// attribute (and a title tooltip); every other attribute and declaration
// is preserved. Elements with a missing or non-numeric reg-num are skipped
// and counted, never fatal.
package mapview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/lctflights/flightmap/internal/colorize"
)

const (
	attrRegNum  = "reg-num"
	attrTitle   = "data-title"
	classRegion = "region"
)

// ErrNotSVG is returned by Parse when the document has no <svg> element.
var ErrNotSVG = errors.New("mapview: document has no svg element")

// Region is one paintable map element.
type Region struct {
	// ID is the reg-num attribute in canonical decimal form.
	ID string
	// Title is the data-title attribute, possibly empty.
	Title string

	node *html.Node
}

// Fill returns the current fill declaration of the element's style.
func (r Region) Fill() string {
	v, _ := styleProperty(attr(r.node, "style"), "fill")
	return v
}

// Map is a parsed SVG map. It is not safe for concurrent use.
type Map struct {
	prolog  []byte
	nodes   []*html.Node
	regions []Region
	skipped int
}

// Parse reads an SVG document. An XML declaration or DOCTYPE before the
// root element is kept verbatim for Render.
func Parse(r io.Reader) (*Map, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read svg: %w", err)
	}

	prolog, body := splitProlog(raw)
	bodyCtx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(body), bodyCtx)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	m := &Map{prolog: prolog, nodes: nodes}
	hasSVG := false
	for _, n := range nodes {
		walk(n, func(n *html.Node) {
			if n.Type != html.ElementNode {
				return
			}
			if n.Data == "svg" {
				hasSVG = true
			}
			if n.Data != "path" || !hasClass(n, classRegion) {
				return
			}
			id, ok := parseRegNum(attr(n, attrRegNum))
			if !ok {
				m.skipped++
				return
			}
			m.regions = append(m.regions, Region{ID: id, Title: attr(n, attrTitle), node: n})
		})
	}
	if !hasSVG {
		return nil, ErrNotSVG
	}
	return m, nil
}

// Regions returns the paintable regions in document order.
func (m *Map) Regions() []Region {
	return slices.Clone(m.regions)
}

// Skipped is the number of region elements without a usable reg-num.
func (m *Map) Skipped() int {
	return m.skipped
}

// Lookup returns the first region with the given id.
func (m *Map) Lookup(id string) (Region, bool) {
	for _, r := range m.regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Paint colors every region from results and sets a tooltip with its
// flight count and share. Regions missing from results get the neutral
// color.
func (m *Map) Paint(results map[string]colorize.Result) {
	for _, r := range m.regions {
		res, ok := results[r.ID]
		if !ok {
			setStyleProperty(r.node, "fill", colorize.NeutralColor)
			setAttr(r.node, "title", tooltip(r, 0, 0))
			continue
		}
		setStyleProperty(r.node, "fill", res.Color())
		setAttr(r.node, "title", tooltip(r, res.Count, res.Percent))
	}
}

// PaintUniform gives every region the same fill and drops tooltips that
// could describe stale data.
func (m *Map) PaintUniform(color string) {
	for _, r := range m.regions {
		setStyleProperty(r.node, "fill", color)
		removeAttr(r.node, "title")
	}
}

// Render writes the document, including any prolog kept by Parse.
func (m *Map) Render(w io.Writer) error {
	if len(m.prolog) > 0 {
		if _, err := w.Write(m.prolog); err != nil {
			return fmt.Errorf("write prolog: %w", err)
		}
	}
	for _, n := range m.nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
	}
	return nil
}

func tooltip(r Region, count int64, percent float64) string {
	name := r.Title
	if name == "" {
		name = r.ID
	}
	return fmt.Sprintf("Region: %s\nFlights: %d\nShare: %.1f%%", name, count, percent)
}

// splitProlog separates a leading XML declaration and DOCTYPE, which the
// HTML tokenizer would otherwise turn into comments.
func splitProlog(raw []byte) (prolog, body []byte) {
	rest := raw
	for {
		trimmed := bytes.TrimLeft(rest, " \t\r\n")
		var end int
		switch {
		case bytes.HasPrefix(trimmed, []byte("<?xml")):
			end = bytes.Index(trimmed, []byte("?>")) + len("?>")
		case len(trimmed) >= 9 && bytes.EqualFold(trimmed[:9], []byte("<!DOCTYPE")):
			end = bytes.IndexByte(trimmed, '>') + 1
		default:
			return raw[:len(raw)-len(rest)], rest
		}
		if end <= 1 {
			return raw[:len(raw)-len(rest)], rest
		}
		rest = trimmed[end:]
	}
}

func parseRegNum(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return "", false
	}
	return strconv.FormatUint(n, 10), true
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == key
	})
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(attr(n, "class")), class)
}
