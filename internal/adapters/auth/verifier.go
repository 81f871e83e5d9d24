package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"homenest/internal/adapters/observability"
	"homenest/internal/domain"
)

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier validates bearer credentials minted by the identity service.
// HS256 with a shared secret; issuer and audience are enforced when
// configured. The subject and email it yields are authoritative and
// override anything client-supplied with the same meaning.
type Verifier struct {
	secret   []byte
	issuer   string
	audience string
}

func NewVerifier(secret, issuer, audience string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer, audience: audience}
}

func (v *Verifier) Verify(ctx context.Context, credential string) (domain.Identity, error) {
	if credential == "" {
		return v.reject("missing credential")
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	var c claims
	tok, err := jwt.ParseWithClaims(credential, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !tok.Valid {
		return v.reject("invalid credential")
	}
	if c.Subject == "" {
		return v.reject("credential has no subject")
	}

	observability.ObserveAuth("ok")
	return domain.Identity{SubjectID: c.Subject, Email: c.Email}, nil
}

func (v *Verifier) reject(reason string) (domain.Identity, error) {
	observability.ObserveAuth("rejected")
	return domain.Identity{}, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, reason)
}
