package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/cinebook/internal/auth"
	"github.com/mmynk/cinebook/internal/metrics"
	"github.com/mmynk/cinebook/internal/middleware"
	"github.com/mmynk/cinebook/internal/session"
	"github.com/mmynk/cinebook/pkg/api"
)

// AccountService implements the AccountService RPC interface.
type AccountService struct {
	authenticator auth.Authenticator
	sessions      *session.Manager
	jwtManager    *auth.JWTManager
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// NewAccountService creates the account service.
func NewAccountService(authenticator auth.Authenticator, sessions *session.Manager, jwtManager *auth.JWTManager, m *metrics.Metrics, logger *slog.Logger) *AccountService {
	return &AccountService{
		authenticator: authenticator,
		sessions:      sessions,
		jwtManager:    jwtManager,
		metrics:       m,
		logger:        logger,
	}
}

// Register creates a local account. It does not sign the user in.
func (s *AccountService) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	s.logger.Info("Register request", "email", req.Msg.Email)

	cred, err := s.authenticator.Register(ctx, req.Msg.Name, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", req.Msg.Email, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.RegisterResponse{Email: cred.Email, Name: cred.Name}), nil
}

// Login verifies credentials, persists the device session and issues a token.
func (s *AccountService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	profile, err := s.authenticator.Login(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.metrics.ObserveLogin(false)
		return nil, toConnectError(err)
	}
	s.metrics.ObserveLogin(true)

	saved := true
	if err := s.sessions.Store(ctx, profile.Email); err != nil {
		// The account is verified but not signed in; protected calls will be rejected.
		s.logger.Warn("Session not persisted", "email", profile.Email, "error", err)
		saved = false
	}

	token, err := s.jwtManager.Generate(profile)
	if err != nil {
		s.logger.Error("Failed to generate token", "email", profile.Email, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.LoginResponse{
		User:         toAPIUser(profile),
		Token:        token,
		SessionSaved: saved,
	}), nil
}

// Logout clears the session marker and the cached profile.
func (s *AccountService) Logout(ctx context.Context, _ *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	if err := s.sessions.Clear(ctx); err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.logger.Info("Signed out", "email", middleware.GetEmail(ctx))
	return connect.NewResponse(&api.LogoutResponse{}), nil
}

// RestoreSession runs the startup cross-check and, when the session is
// consistent, issues a fresh token.
func (s *AccountService) RestoreSession(ctx context.Context, _ *connect.Request[api.RestoreSessionRequest]) (*connect.Response[api.RestoreSessionResponse], error) {
	profile, err := s.sessions.Restore(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if profile == nil {
		return connect.NewResponse(&api.RestoreSessionResponse{}), nil
	}

	token, err := s.jwtManager.Generate(profile)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.RestoreSessionResponse{User: toAPIUser(profile), Token: token}), nil
}

// ChangePassword changes the signed-in user's password.
func (s *AccountService) ChangePassword(ctx context.Context, req *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error) {
	email := middleware.GetEmail(ctx)
	if email == "" {
		return nil, toConnectError(errSignInRequired)
	}

	if err := s.authenticator.UpdatePassword(ctx, email, req.Msg.OldPassword, req.Msg.NewPassword); err != nil {
		s.logger.Warn("Password change failed", "email", email, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ChangePasswordResponse{}), nil
}

// UpdateDisplayName renames the signed-in user. A cached-profile failure is
// reported as a warning, not an error.
func (s *AccountService) UpdateDisplayName(ctx context.Context, req *connect.Request[api.UpdateDisplayNameRequest]) (*connect.Response[api.UpdateDisplayNameResponse], error) {
	email := middleware.GetEmail(ctx)
	if email == "" {
		return nil, toConnectError(errSignInRequired)
	}

	update, err := s.authenticator.UpdateDisplayName(ctx, email, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &api.UpdateDisplayNameResponse{Name: update.Name, CacheUpdated: update.CacheUpdated}
	if update.CacheErr != nil {
		resp.Warning = update.CacheErr.Error()
	}
	return connect.NewResponse(resp), nil
}
