// Package ratelimit provides fixed-window request counting with pluggable
// storage, used to slow credential brute-forcing on the login endpoint.
//
// A Limiter allows a configured number of hits per key per window. The
// in-memory store serves a single instance; the Redis store shares counters
// across replicas. Keys are caller-defined — the httpapi login handler keys
// on normalized email plus client address.
package ratelimit
