package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "staff")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, "FlavourHaven", claims.Issuer)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)

	// A token signed with a different secret fails verification.
	original := JWTSecret
	JWTSecret = []byte("some-other-secret")
	forged, _ := GenerateToken(1, "admin")
	JWTSecret = original

	_, err = ParseToken(forged)
	assert.Error(t, err)
}
