// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quickly-rank API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

Wrap it with middleware.CORS before serving to browsers.

# Endpoints

Health:

	GET /health

Editing sessions (all but creation require X-Session-Key):

	POST   /sessions                 - Start editing a ballot
	GET    /sessions/{id}            - Current view
	POST   /sessions/{id}/events     - Report an input event
	GET    /sessions/{id}/selections - Ballot as a FlatSelection
	DELETE /sessions/{id}            - Tear the session down

Session routes are wrapped in middleware.WithLogging.
*/
package router
