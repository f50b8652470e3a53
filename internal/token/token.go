package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer creates and verifies the HMAC-signed credentials carried in the
// auth cookie. Claims are caller-supplied; the issuer only adds issuance
// and expiry timestamps.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New constructs an Issuer with the given signing secret and token lifetime.
func New(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs the provided claims into a compact JWT expiring after the
// configured lifetime.
func (i *Issuer) Issue(claims map[string]any) (string, error) {
	issuedAt := i.now()

	tokenClaims := jwt.MapClaims{}
	for key, value := range claims {
		tokenClaims[key] = value
	}
	tokenClaims["iat"] = issuedAt.Unix()
	tokenClaims["exp"] = issuedAt.Add(i.ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a compact JWT, returning its claims. Missing
// tokens, bad signatures and expired tokens all fail verification.
func (i *Issuer) Verify(tokenString string) (jwt.MapClaims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is empty")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// WithClock overrides the issuance clock. Intended for tests.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}
