// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package mapview

import (
	"fmt"
	"strconv"

	"github.com/lctflights/flightmap/internal/colorize"
	"github.com/lctflights/flightmap/internal/models"
)

// NoDataText stands in for a missing region name or missing metrics.
const NoDataText = "No data"

// NoPercentText replaces the share line when the snapshot total is zero.
const NoPercentText = "No percentage data"

// Snapshot is the last successfully fetched statistics and their total.
// The zero Snapshot has no regions and a zero total.
type Snapshot struct {
	Stats models.MapStats
	Total int64
}

// NewSnapshot computes the flight total once for later click lookups.
func NewSnapshot(stats models.MapStats) Snapshot {
	return Snapshot{Stats: stats, Total: colorize.Total(stats.Counts())}
}

// Results classifies every region of the snapshot on the default scale.
func (s Snapshot) Results() map[string]colorize.Result {
	_, results := colorize.DefaultScale.Breakdown(s.Stats.Counts())
	return results
}

// HoverText is shown while the pointer is over a region.
func HoverText(r Region) string {
	return fmt.Sprintf("%s (%s)", r.Title, r.ID)
}

// Details is what a click on a region displays.
type Details struct {
	ID      string
	Name    string
	HasData bool
	Metrics models.RegionMetrics
	// Percent is meaningful only when HasPercent is set.
	Percent    float64
	HasPercent bool
}

// Details resolves a clicked region against the snapshot. A region absent
// from the snapshot has no data but still gets a 0% share when the total
// is positive.
func (s Snapshot) Details(r Region) Details {
	d := Details{ID: r.ID, Name: r.Title}
	d.Metrics, d.HasData = s.Stats.Lookup(r.ID)
	if s.Total > 0 {
		d.HasPercent = true
		d.Percent = colorize.Percent(d.Metrics.TotalFlights, s.Total)
	}
	return d
}

// Lines renders the details panel, one entry per line.
func (d Details) Lines() []string {
	name := d.Name
	if name == "" {
		name = NoDataText
	}
	lines := []string{name + " (" + d.ID + ")"}

	if !d.HasData {
		lines = append(lines, "Flights: "+NoDataText)
	} else {
		m := d.Metrics
		lines = append(lines,
			"Flights: "+strconv.FormatInt(m.TotalFlights, 10),
			"Successful: "+strconv.FormatInt(m.SuccessfulFlights, 10),
			"Failed: "+strconv.FormatInt(m.FailedFlights, 10),
			"Violations: "+strconv.FormatInt(m.ViolationsCount, 10),
			fmt.Sprintf("Success rate: %.1f%%", m.SuccessRate),
		)
	}

	if d.HasPercent {
		lines = append(lines, fmt.Sprintf("Share of all flights: %.2f%%", d.Percent))
	} else {
		lines = append(lines, NoPercentText)
	}
	return lines
}
