package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost, "")

	digest, err := h.Hash("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.True(t, h.Verify(string(digest), "s3cret"))
	assert.False(t, h.Verify(string(digest), "wrong"))
}

func TestBcryptFallsBackOnInvalidCost(t *testing.T) {
	h := NewBcrypt(-1, "")

	digest, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, h.Verify(string(digest), "s3cret"))
}

func TestBcryptPepperChangesVerification(t *testing.T) {
	plain := NewBcrypt(bcrypt.MinCost, "")
	peppered := NewBcrypt(bcrypt.MinCost, "pepper")

	digest, err := peppered.Hash("s3cret")
	require.NoError(t, err)

	assert.True(t, peppered.Verify(string(digest), "s3cret"))
	assert.False(t, plain.Verify(string(digest), "s3cret"))
}
