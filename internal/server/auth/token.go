// Package auth implements password hashing and the JWT token service.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/luconnect/luconnect/internal/common"
)

// TokenKind distinguishes access tokens from refresh tokens. It is carried
// in the "typ" claim so one kind cannot stand in for the other.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

// Claims is the signed payload of every token. Subject holds the username.
type Claims struct {
	jwt.RegisteredClaims
	Kind TokenKind `json:"typ,omitempty"`
}

// TokenService issues and validates HS256 tokens. It holds no mutable state
// and is safe for concurrent use.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenService returns a service signing with secret. A refreshTTL of
// zero issues refresh tokens without an expiry.
func NewTokenService(secret []byte, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	c := *s
	c.now = now
	return &c
}

// AccessTTL returns the lifetime of access tokens.
func (s *TokenService) AccessTTL() time.Duration {
	return s.accessTTL
}

// Issue signs a token of the given kind for subject. A non-positive ttl
// omits the exp claim. The returned time is the expiry, zero when absent.
func (s *TokenService) Issue(subject string, ttl time.Duration, kind TokenKind) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, common.ErrInvalidSubject
	}

	now := s.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Kind: kind,
	}

	var expiresAt time.Time
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
		expiresAt = claims.ExpiresAt.Time
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// IssueAccess signs an access token valid for the configured access TTL.
func (s *TokenService) IssueAccess(subject string) (string, time.Time, error) {
	return s.Issue(subject, s.accessTTL, KindAccess)
}

// IssueRefresh signs a refresh token for subject.
func (s *TokenService) IssueRefresh(subject string) (string, error) {
	token, _, err := s.Issue(subject, s.refreshTTL, KindRefresh)
	return token, err
}

// Validate checks an access token. The signature is verified first, then
// the expiry. Errors are common.ErrTokenExpired for a well-signed token past
// its expiry and common.ErrInvalidToken for everything else.
func (s *TokenService) Validate(token string) (*Claims, error) {
	claims, err := s.parse(token, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims.Kind == KindRefresh || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// ParseRefresh checks a refresh token. Expiry is enforced only when the
// token carries one. A missing token or subject yields
// common.ErrInvalidSubject.
func (s *TokenService) ParseRefresh(token string) (*Claims, error) {
	if token == "" {
		return nil, common.ErrInvalidSubject
	}

	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.Kind == KindAccess {
		return nil, common.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, common.ErrInvalidSubject
	}
	return claims, nil
}

// Refresh mints a new access token for the subject of refreshToken. The
// previous access token plays no part.
func (s *TokenService) Refresh(refreshToken string) (string, time.Time, error) {
	claims, err := s.ParseRefresh(refreshToken)
	if err != nil {
		return "", time.Time{}, err
	}
	return s.IssueAccess(claims.Subject)
}

func (s *TokenService) parse(token string, opts ...jwt.ParserOption) (*Claims, error) {
	opts = append(opts,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now().UTC() }),
	)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)

	switch {
	case err == nil && parsed.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, common.ErrTokenExpired
	default:
		return nil, common.ErrInvalidToken
	}
}
