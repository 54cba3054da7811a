// Package digest implements the credential hashing used across the accounts
// service: a fixed one-way sha256 transform of a secret into a lowercase
// hexadecimal string.
//
// The same transform covers both stored password hashes and session
// identifiers (the hex digest of a raw session token is the session primary
// key, so a read-only database compromise never exposes usable tokens).
//
// Usage:
//
//	hash := digest.Hash("secret1")
//	ok := digest.Verify("secret1", hash) // true
//
// The scheme is deliberately unsalted and single-pass to stay compatible
// with credentials already persisted by the storefront. For new deployments
// that can migrate their user table, auth.BcryptHasher offers a slow, salted
// alternative behind the same interface.
package digest
