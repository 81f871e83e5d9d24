package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"homenest/internal/adapters/auth"
	"homenest/internal/domain"
)

const secret = "test-secret"

func mint(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestVerify_ValidCredential(t *testing.T) {
	v := auth.NewVerifier(secret, "homenest", "api")
	cred := mint(t, secret, jwt.MapClaims{
		"sub":   "u1",
		"email": "ada@x.com",
		"iss":   "homenest",
		"aud":   "api",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	ident, err := v.Verify(context.Background(), cred)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if ident.SubjectID != "u1" || ident.Email != "ada@x.com" {
		t.Fatalf("unexpected identity: %+v", ident)
	}
}

func TestVerify_Rejections(t *testing.T) {
	v := auth.NewVerifier(secret, "homenest", "api")
	base := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub": "u1", "iss": "homenest", "aud": "api",
			"exp": time.Now().Add(time.Hour).Unix(),
		}
	}

	expired := base()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	noSubject := base()
	delete(noSubject, "sub")

	wrongAud := base()
	wrongAud["aud"] = "someone-else"

	cases := map[string]string{
		"missing":         "",
		"garbage":         "not.a.token",
		"wrong secret":    mint(t, "other-secret", base()),
		"expired":         mint(t, secret, expired),
		"missing subject": mint(t, secret, noSubject),
		"wrong audience":  mint(t, secret, wrongAud),
	}
	for name, cred := range cases {
		if _, err := v.Verify(context.Background(), cred); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("%s: expected ErrUnauthenticated, got %v", name, err)
		}
	}
}

func TestVerify_IssuerAudienceOptional(t *testing.T) {
	v := auth.NewVerifier(secret, "", "")
	cred := mint(t, secret, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	if _, err := v.Verify(context.Background(), cred); err != nil {
		t.Fatalf("err: %v", err)
	}
}
