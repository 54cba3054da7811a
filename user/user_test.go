package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealshop/accounts/user"
)

func TestSanitized(t *testing.T) {
	t.Parallel()

	u := user.User{ID: 1, Email: "a@x.com", PasswordHash: "deadbeef"}
	safe := u.Sanitized()

	assert.Empty(t, safe.PasswordHash)
	assert.Equal(t, u.ID, safe.ID)
	assert.Equal(t, u.Email, safe.Email)
	// The original is untouched.
	assert.Equal(t, "deadbeef", u.PasswordHash)
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a@x.com", user.NormalizeEmail("  A@X.Com "))
	assert.Equal(t, "a@x.com", user.NormalizeEmail("a@x.com"))
	assert.Equal(t, "", user.NormalizeEmail("   "))
}
