package middleware

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/cinebook/internal/auth"
)

type contextKey string

// EmailKey is the context key for the signed-in account's email.
const EmailKey contextKey = "email"

// GetEmail extracts the signed-in email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// WithEmail returns a context carrying email, as RequireAuth does.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, EmailKey, email)
}

// ErrNotSignedIn is returned when a token is valid but its account is not
// the one signed in on this device.
var ErrNotSignedIn = errors.New("not signed in on this device")

// SessionSource reports the email of the signed-in account, or "" when
// nobody is signed in. session.Manager implements it.
type SessionSource interface {
	Retrieve(ctx context.Context) (string, error)
}

// activeEmail checks the token's email against the device session.
func activeEmail(ctx context.Context, sessions SessionSource, email string) error {
	current, err := sessions.Retrieve(ctx)
	if err != nil {
		return connect.NewError(connect.CodeInternal, err)
	}
	if current == "" || current != email {
		return connect.NewError(connect.CodeUnauthenticated, ErrNotSignedIn)
	}
	return nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth returns an interceptor that rejects calls without a valid
// Bearer token, or whose token belongs to an account that is not signed in
// on this device, and puts the token's email into the context.
func RequireAuth(jwtManager *auth.JWTManager, sessions SessionSource) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			token, ok := bearerToken(authHeader)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(token)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			if err := activeEmail(ctx, sessions, claims.Email); err != nil {
				return nil, err
			}

			return next(WithEmail(ctx, claims.Email), req)
		}
	}
}

// OptionalAuth adds the email to the context when a valid token for the
// signed-in account is present and lets every call through. Handlers decide
// which calls need a user.
func OptionalAuth(jwtManager *auth.JWTManager, sessions SessionSource) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token, ok := bearerToken(req.Header().Get("Authorization")); ok {
				// Invalid and stale tokens are ignored here.
				if claims, err := jwtManager.Validate(token); err == nil && activeEmail(ctx, sessions, claims.Email) == nil {
					ctx = WithEmail(ctx, claims.Email)
				}
			}
			return next(ctx, req)
		}
	}
}
