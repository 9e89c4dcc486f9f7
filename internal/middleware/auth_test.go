package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/cinebook/internal/auth"
	"github.com/mmynk/cinebook/internal/models"
	"github.com/mmynk/cinebook/pkg/api"
)

type fixedSession struct {
	email string
	err   error
}

func (f fixedSession) Retrieve(context.Context) (string, error) {
	return f.email, f.err
}

// callWith runs interceptor around a handler that records the context email.
func callWith(t *testing.T, interceptor connect.UnaryInterceptorFunc, token string) (string, error) {
	t.Helper()
	var seen string
	next := func(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
		seen = GetEmail(ctx)
		return connect.NewResponse(&api.LogoutResponse{}), nil
	}
	req := connect.NewRequest(&api.LogoutRequest{})
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	_, err := interceptor(next)(context.Background(), req)
	return seen, err
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.Generate(&models.UserProfile{IDFromBackend: "a@x.com", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name     string
		token    string
		session  fixedSession
		wantCode connect.Code
	}{
		{"signed in", token, fixedSession{email: "a@x.com"}, 0},
		{"missing token", "", fixedSession{email: "a@x.com"}, connect.CodeUnauthenticated},
		{"bad token", "not-a-jwt", fixedSession{email: "a@x.com"}, connect.CodeUnauthenticated},
		{"signed out", token, fixedSession{}, connect.CodeUnauthenticated},
		{"another account signed in", token, fixedSession{email: "b@x.com"}, connect.CodeUnauthenticated},
		{"vault failure", token, fixedSession{err: errors.New("vault closed")}, connect.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := callWith(t, RequireAuth(jwtManager, tt.session), tt.token)
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if email != "a@x.com" {
					t.Errorf("email = %q, want a@x.com", email)
				}
				return
			}
			if got := connect.CodeOf(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v (err: %v)", got, tt.wantCode, err)
			}
			if email != "" {
				t.Errorf("handler ran with email %q", email)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.Generate(&models.UserProfile{IDFromBackend: "a@x.com", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	email, err := callWith(t, OptionalAuth(jwtManager, fixedSession{email: "a@x.com"}), token)
	if err != nil || email != "a@x.com" {
		t.Errorf("signed in: email=%q err=%v", email, err)
	}

	// A stale token still reaches the handler, just without an email.
	email, err = callWith(t, OptionalAuth(jwtManager, fixedSession{}), token)
	if err != nil || email != "" {
		t.Errorf("signed out: email=%q err=%v", email, err)
	}
}
