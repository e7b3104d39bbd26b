// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package supervisor runs the flightmap server's long-lived services under a
suture v4 supervisor tree.

	RootSupervisor ("flightmap")
	└── APISupervisor ("api-layer")
	    └── HTTPService

Crashed services are restarted with suture's backoff. Cancelling the context
passed to Serve stops every service, each within the configured shutdown
timeout; services still running after that are reported by
UnstoppedServiceReport.

Supervisor events (restarts, backoff, timeouts) are logged through
sutureslog into the zerolog logger:

	tree, err := supervisor.NewSupervisorTree(
		logging.NewSlogLogger("supervisor"),
		supervisor.TreeConfig{ShutdownTimeout: cfg.Server.ShutdownTimeout},
	)
	tree.AddAPIService(services.NewHTTPService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)
*/
package supervisor
