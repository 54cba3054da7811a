// Package httpapi exposes the account service as a JSON HTTP API.
//
// Routes:
//
//	POST /signup  register a new customer account
//	POST /login   authenticate and set the session cookie
//	POST /logout  invalidate the session and clear the cookie
//	GET  /me      return the authenticated customer
//	GET  /healthz liveness and dependency probe
//
// Errors are reported as {"error": "<code>"} with machine-readable codes.
// The middleware chain adds request correlation ids, structured request
// logging, per-request session memoization and optional CORS for browser
// clients on other origins.
package httpapi
