// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Kingmaker API.

# Route Registration

NewRouter returns an http.Handler with every endpoint, wrapped in CORS:

	handler := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Simulations:

	POST /simulations              - Run a scenario and store its report
	GET  /simulations              - List stored reports, newest first
	GET  /simulations/{id}         - Report as JSON (id or share slug)
	GET  /simulations/{id}/text    - Report as a text table
	GET  /simulations/{id}/verify  - Check the report fingerprint
*/
package router
