// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package models defines the JSON payloads exchanged by the flightmap server
and its clients.

Region identifiers are strings everywhere a payload keys on them: they come
from JSON object keys on the wire and from the reg-num attribute in the SVG
map, so keeping them as strings avoids a lossy round trip through int.

Model Categories:

 1. Statistics: MapStats, RegionMetrics, Period
 2. Analytics: RegionAnalytics and its breakdowns
 3. Listings: FlightsPage, Flight, Pagination, RegionsCatalog, RegionInfo
 4. Colorizer output: ColorMap, RegionColor, ScaleStep
 5. Acknowledgements: UploadAck, ReportAck, HealthStatus
 6. Errors: ErrorBody

Metric fields are independently optional. A field missing from a decoded
payload is zero, and zero-valued fields are omitted when encoding.
*/
package models
