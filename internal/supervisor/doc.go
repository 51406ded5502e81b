// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

/*
Package supervisor runs the long-lived parts of CareerCanvas under a suture v4
supervisor tree.

# Layout

	RootSupervisor ("careercanvas")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   ├── SessionCleanupService (session auth mode only)
	│   └── MemorySnapshotCache janitor (memory cache backend only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A service that returns an error is restarted. Once a layer exceeds
FailureThreshold failures, decayed at FailureDecay per second, it waits
FailureBackoff before the next restart. Other layers keep running.

# Logging

Supervisor events go through sutureslog to a *slog.Logger. The server passes
one backed by logging.NewSlogHandler so events land in the zerolog output.

# Shutdown

Cancelling the context passed to Serve stops every service. Services that
have not returned after ShutdownTimeout are listed by UnstoppedServiceReport.
*/
package supervisor
