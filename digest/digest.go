package digest

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Size is the length of a digest in hex characters (sha256 = 32 bytes = 64 chars).
const Size = sha256.Size * 2

// Hash returns the lowercase hexadecimal sha256 digest of secret.
// Deterministic: the same input always produces the same output.
func Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the digest of secret and compares it against expected.
// The comparison is constant-time to avoid leaking match prefixes, although
// the unsalted scheme itself is not hardened against offline attacks.
func Verify(secret, expected string) bool {
	computed := Hash(secret)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expected)) == 1
}
