// Package sessiontransport carries raw session tokens between the service
// and the browser over a single HTTP cookie.
//
// The cookie value is the raw (undigested) token; attributes are fixed to
// http-only, SameSite=Lax, and path=/ with the Secure flag following the
// deployment environment. Clear always rewrites the cookie with an immediate
// max-age so the client never retains a stale value, even when no session
// existed server-side.
package sessiontransport
