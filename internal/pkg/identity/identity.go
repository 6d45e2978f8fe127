package identity

import (
	"errors"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Verifier validates bearer tokens issued by the external identity
// provider and extracts the caller identity. It is constructed once at
// startup and injected; there is no package-level instance.
type Verifier struct {
	secret []byte
}

type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	jwtlib.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
