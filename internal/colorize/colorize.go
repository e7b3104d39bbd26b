// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package colorize turns per-region flight counts into color buckets.
//
// Each region's share of the total is tested against a fixed scale of
// thresholds, highest first, and the first threshold the share reaches
// picks the bucket:
//
//	>= 60%  critical  #ff4444
//	>= 40%  high      #ffaa00
//	>= 10%  moderate  #ffff00
//	>=  1%  low       #44ff44
//	else    no_data   #cccccc
//
// A zero total puts every region in no_data. Negative counts are treated
// as zero.
package colorize

import (
	"errors"
	"fmt"
)

// Bucket is a color intensity level. Higher values are more intense.
type Bucket int

const (
	NoData Bucket = iota
	Low
	Moderate
	High
	Critical
)

// NeutralColor paints regions without data and the whole map after a
// failed refresh.
const NeutralColor = "#cccccc"

var bucketNames = [...]string{"no_data", "low", "moderate", "high", "critical"}

var bucketColors = [...]string{NeutralColor, "#44ff44", "#ffff00", "#ffaa00", "#ff4444"}

func (b Bucket) String() string {
	if b < NoData || b > Critical {
		return fmt.Sprintf("Bucket(%d)", int(b))
	}
	return bucketNames[b]
}

// Color returns the fill color, NeutralColor for anything out of range.
func (b Bucket) Color() string {
	if b < NoData || b > Critical {
		return NeutralColor
	}
	return bucketColors[b]
}

// Buckets lists every bucket from least to most intense.
func Buckets() []Bucket {
	return []Bucket{NoData, Low, Moderate, High, Critical}
}

// Step is one threshold: a share of at least MinPercent selects Bucket.
type Step struct {
	Bucket     Bucket
	MinPercent float64
}

// Scale is an ordered list of steps, tested first to last.
type Scale []Step

// DefaultScale is the scale used by the server, the paint tool and the
// browser client.
var DefaultScale = Scale{
	{Bucket: Critical, MinPercent: 60},
	{Bucket: High, MinPercent: 40},
	{Bucket: Moderate, MinPercent: 10},
	{Bucket: Low, MinPercent: 1},
}

var (
	ErrEmptyScale         = errors.New("colorize: scale has no steps")
	ErrScaleNotDescending = errors.New("colorize: scale thresholds must be strictly descending")
	ErrScaleNotMonotonic  = errors.New("colorize: scale buckets must decrease with thresholds")
)

// Validate checks that thresholds strictly descend and that a lower
// threshold never maps to a more intense bucket.
func (s Scale) Validate() error {
	if len(s) == 0 {
		return ErrEmptyScale
	}
	for i := 1; i < len(s); i++ {
		if s[i].MinPercent >= s[i-1].MinPercent {
			return fmt.Errorf("%w: step %d (%.2f) after %.2f", ErrScaleNotDescending, i, s[i].MinPercent, s[i-1].MinPercent)
		}
		if s[i].Bucket > s[i-1].Bucket {
			return fmt.Errorf("%w: step %d", ErrScaleNotMonotonic, i)
		}
	}
	return nil
}

// Classify returns the bucket of the first step percent reaches.
func (s Scale) Classify(percent float64) Bucket {
	for _, step := range s {
		if percent >= step.MinPercent {
			return step.Bucket
		}
	}
	return NoData
}

// Total sums counts, ignoring negative values.
func Total(counts map[string]int64) int64 {
	var total int64
	for _, c := range counts {
		total += clamp(c)
	}
	return total
}

// Percent is count/total*100, or 0 when total is not positive.
func Percent(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(clamp(count)) / float64(total) * 100
}

// Result is the colorizer verdict for one region.
type Result struct {
	Count   int64
	Percent float64
	Bucket  Bucket
}

// Color is shorthand for r.Bucket.Color().
func (r Result) Color() string {
	return r.Bucket.Color()
}

// Breakdown classifies every region with s and returns the total used.
func (s Scale) Breakdown(counts map[string]int64) (int64, map[string]Result) {
	total := Total(counts)
	out := make(map[string]Result, len(counts))
	for id, c := range counts {
		p := Percent(c, total)
		out[id] = Result{Count: clamp(c), Percent: p, Bucket: s.Classify(p)}
	}
	return total, out
}

// Compute maps every region to its bucket on DefaultScale.
func Compute(counts map[string]int64) map[string]Bucket {
	_, results := DefaultScale.Breakdown(counts)
	buckets := make(map[string]Bucket, len(results))
	for id, r := range results {
		buckets[id] = r.Bucket
	}
	return buckets
}

// ColorOf returns the fill for id, NeutralColor when id is unknown.
func ColorOf(buckets map[string]Bucket, id string) string {
	b, ok := buckets[id]
	if !ok {
		return NeutralColor
	}
	return b.Color()
}

func clamp(c int64) int64 {
	if c < 0 {
		return 0
	}
	return c
}
