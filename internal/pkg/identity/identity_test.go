package identity

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestVerify_ValidToken(t *testing.T) {
	v := NewVerifier("secret")

	tokenStr := sign(t, "secret", Claims{
		UID:   "uid-1",
		Email: "donor@mail.com",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := v.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UID)
	assert.Equal(t, "donor@mail.com", claims.Email)
}

func TestVerify_WrongSecret(t *testing.T) {
	v := NewVerifier("secret")

	tokenStr := sign(t, "other-secret", Claims{UID: "uid-1"})

	_, err := v.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	v := NewVerifier("secret")

	tokenStr := sign(t, "secret", Claims{
		UID: "uid-1",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err := v.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MissingUID(t *testing.T) {
	v := NewVerifier("secret")

	tokenStr := sign(t, "secret", Claims{Email: "donor@mail.com"})

	_, err := v.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	v := NewVerifier("secret")

	_, err := v.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
