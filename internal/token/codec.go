// Package token implements the signed identity token carried in the access
// cookie. Tokens are HS256 JWTs with the holder's display name and an
// internal issued-at/expiry pair; expiry is enforced at decode time, not just
// by the cookie lifetime.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
)

// Claims is the payload embedded in an access token.
type Claims struct {
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// Codec signs and verifies access tokens. All signing parameters come from
// explicit configuration passed at construction; there is no ambient state.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec signing with secret and issuing tokens valid for
// ttl. A non-positive ttl falls back to one hour, matching the cookie
// lifetime set at the HTTP boundary.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the validity window tokens are issued with.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Encode issues a signed token for fullName.
func (c *Codec) Encode(fullName string) (string, error) {
	now := time.Now()
	claims := &Claims{
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies raw and returns its claims. Malformed tokens, bad
// signatures and wrong algorithms all come back as domain.ErrTokenInvalid;
// an expired token is domain.ErrTokenExpired. Decode never panics.
func (c *Codec) Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid || claims.FullName == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
