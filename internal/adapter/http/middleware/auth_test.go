package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/infrastructure/auth"
)

func contextWithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, ActorContextKey, actor)
}

func testJWT(t *testing.T) *auth.JWTManager {
	t.Helper()
	return auth.NewJWTManager("middleware-test-secret", time.Hour)
}

func TestAuthMiddlewarePutsActorInContext(t *testing.T) {
	jwtManager := testJWT(t)
	actor := domain.Actor{ID: "act-1", Name: "Olena", Role: domain.RoleManagement}

	token, err := jwtManager.Generate(actor)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var got domain.Actor
	var found bool
	handler := AuthMiddleware(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = ActorFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !found {
		t.Fatal("actor missing from context")
	}
	if got.ID != actor.ID || got.Role != actor.Role {
		t.Fatalf("unexpected actor %+v", got)
	}
}

func TestAuthMiddlewareRejectsBadHeaders(t *testing.T) {
	jwtManager := testJWT(t)
	handler := AuthMiddleware(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequireManagement(t *testing.T) {
	handler := RequireManagement(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("no actor", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/bookings/bk-1/finance", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("staff actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/bk-1/finance", nil)
		ctx := req.Context()
		ctx = contextWithActor(ctx, domain.Actor{ID: "act-2", Role: domain.RoleStaff})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("management actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/bk-1/finance", nil)
		ctx := contextWithActor(req.Context(), domain.Actor{ID: "act-3", Role: domain.RoleManagement})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})
}
