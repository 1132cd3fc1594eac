package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetClerkID(t *testing.T) {
	ctx := context.Background()
	if _, ok := GetClerkID(ctx); ok {
		t.Fatal("expected no clerk ID in empty context")
	}

	ctx = context.WithValue(ctx, ClerkIDKey, "clerk_abc")
	got, ok := GetClerkID(ctx)
	if !ok || got != "clerk_abc" {
		t.Fatalf("got (%q, %v), want (%q, true)", got, ok, "clerk_abc")
	}
}

func TestClerkAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run without auth")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
	rr := httptest.NewRecorder()

	ClerkAuthMiddleware(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestClerkAuthMiddlewareRejectsNonBearerHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run without auth")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()

	ClerkAuthMiddleware(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestOptionalAuthMiddlewarePassesThroughAnonymous(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := GetClerkID(r.Context()); ok {
			t.Error("anonymous request should carry no clerk ID")
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	rr := httptest.NewRecorder()

	OptionalAuthMiddleware(next).ServeHTTP(rr, req)

	if !called {
		t.Fatal("next handler was not called")
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
