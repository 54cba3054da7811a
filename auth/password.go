package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/dealshop/accounts/digest"
)

// PasswordHasher abstracts the password hashing scheme so deployments can
// swap the storefront's historical unsalted digest for a slow KDF without
// touching the flows.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// DigestHasher is the default scheme: a deterministic sha256 hex digest,
// compatible with credentials already persisted by the storefront.
type DigestHasher struct{}

func (DigestHasher) Hash(password string) (string, error) {
	return digest.Hash(password), nil
}

func (DigestHasher) Verify(password, hash string) bool {
	return digest.Verify(password, hash)
}

// BcryptHasher is a salted, adaptive alternative for deployments that can
// migrate their user table. Not interchangeable with DigestHasher: hashes
// produced by one scheme never verify under the other.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
