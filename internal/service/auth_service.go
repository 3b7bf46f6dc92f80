package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mbraun22/privatechef/internal/auth"
	"github.com/mbraun22/privatechef/internal/config"
	"github.com/mbraun22/privatechef/internal/domain"
	"github.com/mbraun22/privatechef/internal/repository"
	"github.com/mbraun22/privatechef/internal/session"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

// TokenPair bundles the access and refresh tokens issued at login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// AuthService coordinates registration, login and web sessions.
type AuthService struct {
	users      repository.UserRepository
	sessions   *session.Store
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, sessions *session.Store) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLSeconds, cfg.Auth.RefreshTokenTTLSeconds),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account. Role defaults to diner when nil.
func (s *AuthService) Register(ctx context.Context, email, password string, role *domain.Role) (*domain.User, TokenPair, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, TokenPair{}, apperrors.NewValidationError("user with this email already exists", nil)
	} else if err != pgx.ErrNoRows {
		return nil, TokenPair{}, apperrors.NewDatabaseError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, TokenPair{}, apperrors.NewPasswordHashError(err)
	}

	userRole := domain.RoleDiner
	if role != nil {
		userRole = *role
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         userRole,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, TokenPair{}, apperrors.NewDatabaseError(err)
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, tokens, nil
}

// Login authenticates an account and issues tokens.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err == pgx.ErrNoRows {
		return nil, TokenPair{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err != nil {
		return nil, TokenPair{}, apperrors.NewDatabaseError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, TokenPair{}, apperrors.NewUnauthorized("invalid credentials")
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, tokens, nil
}

// Me loads the caller's account.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("user", nil)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return user, nil
}

// CreateSession stores a web session for the user and returns its id.
// A new login supersedes rather than refreshes older sessions.
func (s *AuthService) CreateSession(ctx context.Context, user *domain.User) (string, error) {
	sessionID := uuid.NewString()
	data := session.Data{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	}
	if err := s.sessions.Create(ctx, sessionID, data); err != nil {
		return "", err
	}
	return sessionID, nil
}

// SessionUser resolves a session id to its account. ok is false when the
// session is absent or expired.
func (s *AuthService) SessionUser(ctx context.Context, sessionID string) (*domain.User, bool, error) {
	data, ok, err := s.sessions.Get(ctx, sessionID)
	if err != nil || !ok {
		return nil, false, err
	}
	user, err := s.users.GetByID(ctx, data.UserID)
	if err == pgx.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.NewDatabaseError(err)
	}
	return user, true, nil
}

// DestroySession deletes the session; absent ids are not an error.
func (s *AuthService) DestroySession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// SessionTTL exposes the session lifetime for cookie max-age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessions.TTL()
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) issueTokens(userID string) (TokenPair, error) {
	access, exp, err := s.tokenMgr.GenerateAccessToken(userID)
	if err != nil {
		return TokenPair{}, apperrors.NewTokenError(err)
	}
	refresh, _, err := s.tokenMgr.GenerateRefreshToken(userID)
	if err != nil {
		return TokenPair{}, apperrors.NewTokenError(err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}
