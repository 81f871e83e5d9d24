package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"homenest/internal/domain"
)

type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, credential string) (domain.Identity, error) {
	if credential == "good" {
		return domain.Identity{SubjectID: "u1", Email: "ada@x.com"}, nil
	}
	return domain.Identity{}, domain.ErrUnauthenticated
}

func TestAuthenticated(t *testing.T) {
	var seen domain.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := Authenticated(stubVerifier{})(next)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"rejected credential", "Bearer bad", http.StatusUnauthorized},
		{"valid credential", "Bearer good", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/user-properties", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Fatalf("%s: status %d, want %d", tc.name, rr.Code, tc.want)
		}
	}
	if seen.SubjectID != "u1" {
		t.Fatalf("identity not propagated: %+v", seen)
	}
}

func TestLocalLimiter(t *testing.T) {
	l := NewLocalLimiter(1, 2)
	ctx := context.Background()

	if !l.Allow(ctx, "a") || !l.Allow(ctx, "a") {
		t.Fatalf("burst should be allowed")
	}
	if l.Allow(ctx, "a") {
		t.Fatalf("expected throttle after burst")
	}
	if !l.Allow(ctx, "b") {
		t.Fatalf("distinct key should have its own bucket")
	}
}

func TestAsString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"abc", "abc"},
		{float64(123), "123"},
		{12.5, "12.5"},
		{nil, ""},
		{true, ""},
	}
	for _, tc := range cases {
		if got := asString(tc.in); got != tc.want {
			t.Fatalf("asString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
