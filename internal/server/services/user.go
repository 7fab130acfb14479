// Package services contains server-side business logic. This file implements
// UserService, the authentication gateway: registration, login, token
// refresh and bearer token authorization.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/luconnect/luconnect/internal/common"
	"github.com/luconnect/luconnect/internal/logging"
	"github.com/luconnect/luconnect/internal/server/auth"
	"github.com/luconnect/luconnect/internal/server/models"
	"github.com/luconnect/luconnect/internal/server/ratelimit"
	"github.com/luconnect/luconnect/internal/server/repositories/repomanager"
)

// TokenPair is the result of a successful login or refresh. RefreshToken is
// empty after a refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresAt    time.Time
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	tokens      *auth.TokenService
	limiter     ratelimit.Limiter
	log         logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher,
	tokens *auth.TokenService, limiter ratelimit.Limiter, log logging.Logger) *UserService {
	if limiter == nil {
		limiter = ratelimit.Nop{}
	}
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
		limiter:     limiter,
		log:         log,
	}
}

// Register validates and stores a new user. The password hash is not part
// of the result. Duplicate usernames or emails yield
// common.ErrDuplicateCredential; the unique constraints decide races.
func (s *UserService) Register(ctx context.Context, in models.NewUser) (*models.PublicUser, error) {
	in.UserName = common.Truncate(strings.TrimSpace(in.UserName), common.MaxFieldLength)
	in.Email = common.Truncate(strings.TrimSpace(in.Email), common.MaxFieldLength)
	in.FirstName = common.TruncatePtr(in.FirstName, common.MaxFieldLength)
	in.LastName = common.TruncatePtr(in.LastName, common.MaxFieldLength)

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	exists, err := repo.Exists(ctx, in.UserName, in.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking user: %w", err)
	}
	if exists {
		s.log.Info(ctx, "registration rejected: duplicate credential", "username", in.UserName)
		return nil, common.ErrDuplicateCredential
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %w", common.ErrorValidation, err)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	u, err := repo.Create(ctx, &models.User{
		UserName:     in.UserName,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateCredential) {
			s.log.Info(ctx, "registration rejected: duplicate credential", "username", in.UserName, "error", err)
			return nil, common.ErrDuplicateCredential
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.log.Info(ctx, "user registered", "username", u.UserName, "id", u.ID)
	return u.Public(), nil
}

// Login verifies credentials and issues an access and a refresh token. An
// unknown user and a wrong password both yield common.ErrInvalidCredentials;
// only the server log tells them apart.
func (s *UserService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	username = strings.TrimSpace(username)

	if !s.limiter.Allow(ctx, username) {
		s.log.Warn(ctx, "login throttled", "username", username)
		return nil, common.ErrTooManyAttempts
	}

	user, err := s.repomanager.Users(s.db).FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Spend the same time as a real verification.
			s.hasher.Verify(password, s.getDummyHash())
			s.log.Info(ctx, "login failed: unknown user", "username", username)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Info(ctx, "login failed: wrong password", "username", username)
		return nil, common.ErrInvalidCredentials
	}

	if s.hasher.NeedsRehash(user.PasswordHash) {
		s.rehash(ctx, user, password)
	}

	access, expiresAt, err := s.tokens.IssueAccess(user.UserName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	refresh, err := s.tokens.IssueRefresh(user.UserName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	s.log.Info(ctx, "user logged in", "username", user.UserName)
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    common.TokenTypeBearer,
		ExpiresAt:    expiresAt,
	}, nil
}

// RefreshToken mints a new access token from a refresh token. The subject
// must still name an existing user.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		s.log.Info(ctx, "refresh rejected", "error", err)
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Info(ctx, "refresh rejected: unknown subject", "username", claims.Subject)
			return nil, common.ErrInvalidSubject
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	access, expiresAt, err := s.tokens.IssueAccess(user.UserName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	return &TokenPair{AccessToken: access, TokenType: common.TokenTypeBearer, ExpiresAt: expiresAt}, nil
}

// Authorize validates an access token and returns its subject. Errors are
// common.ErrTokenExpired or common.ErrInvalidToken.
func (s *UserService) Authorize(ctx context.Context, token string) (string, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		s.log.Debug(ctx, "token rejected", "error", err)
		return "", err
	}
	return claims.Subject, nil
}

func (s *UserService) getDummyHash() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("dummy-password-for-timing")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

func (s *UserService) rehash(ctx context.Context, user *models.User, password string) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Warn(ctx, "password rehash failed", "username", user.UserName, "error", err)
		return
	}
	if err := s.repomanager.Users(s.db).UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		s.log.Warn(ctx, "password rehash not stored", "username", user.UserName, "error", err)
		return
	}
	s.log.Info(ctx, "password rehashed", "username", user.UserName)
}
