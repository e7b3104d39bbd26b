// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package api implements the flightmap HTTP surface.

Requests pass through the chi middleware stack (request ID, real IP,
Prometheus metrics, panic recovery) and then reach a single ordered route
table. The table writes the CORS headers, picks the first route whose method
and path matcher accept the request, and otherwise falls through:

	GET     -> static asset under the asset root, or 404
	POST    -> 404
	other   -> 405
	OPTIONS -> always 200 with an empty body (first entry in the table)

Every error body has the shape {"error": "<message>"}.

# Routes

	GET  /flights_percent           map statistics
	GET  /map/stats                 map statistics (legacy alias)
	GET  /flights                   flights page (?page=&limit=)
	GET  /update                    pre-loaded legacy document, when configured
	GET  /regions/{id}/analytics    region analytics
	GET  /regions                   regions catalog
	GET  /map/colors                colorizer output per region
	GET  /map/painted.svg           region map painted server-side
	GET  /healthz                   liveness
	GET  /metrics                   Prometheus exposition
	POST /post                      multipart upload acknowledgement
	POST /reports/generate          report acknowledgement

Matching uses the path only, so query strings never affect routing.
*/
package api
