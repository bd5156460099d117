package services

//go:generate mockgen -source=session.go -destination=session_mock.go -package=services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/date-tracker/internal/jwt"
	"github.com/sbilibin2017/date-tracker/internal/logger"
	"github.com/sbilibin2017/date-tracker/internal/models"
)

// TokenManager issues and parses session tokens and their cookies.
type TokenManager interface {
	Generate(ctx context.Context, session *models.Session) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	NewCookie(token string) *http.Cookie
	ExpiredCookie() *http.Cookie
}

// SessionRevoker remembers logged-out tokens until they expire.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SessionService establishes, resolves and clears sessions.
type SessionService struct {
	tokens  TokenManager
	revoker SessionRevoker
	now     func() time.Time
}

// NewSessionService creates a SessionService. revoker may be nil, in which
// case logout only expires the cookie.
func NewSessionService(tokens TokenManager, revoker SessionRevoker) *SessionService {
	return &SessionService{
		tokens:  tokens,
		revoker: revoker,
		now:     time.Now,
	}
}

// Issue returns a session cookie for the user.
func (s *SessionService) Issue(ctx context.Context, user *models.User) (*http.Cookie, error) {
	token, err := s.tokens.Generate(ctx, models.NewSession(user))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate session token", "user_id", user.ID, "err", err)
		return nil, err
	}
	return s.tokens.NewCookie(token), nil
}

// Authenticate resolves the session carried by r. Missing, invalid, expired
// and revoked tokens yield ErrUnauthorized.
func (s *SessionService) Authenticate(ctx context.Context, r *http.Request) (*models.Session, error) {
	claims, err := s.claims(ctx, r)
	if err != nil {
		return nil, err
	}

	if s.revoker != nil && claims.ID != "" {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to check session revocation", "token_id", claims.ID, "err", err)
			return nil, err
		}
		if revoked {
			return nil, fmt.Errorf("%w: session revoked", ErrUnauthorized)
		}
	}

	return claims.Session(), nil
}

// Clear revokes the token carried by r, if any, and returns the cookie that
// removes it from the client. Logging out without a valid session is not an error.
func (s *SessionService) Clear(ctx context.Context, r *http.Request) *http.Cookie {
	claims, err := s.claims(ctx, r)
	if err == nil && s.revoker != nil && claims.ID != "" && claims.ExpiresAt != nil {
		ttl := claims.ExpiresAt.Sub(s.now())
		if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
			logger.FromContext(ctx).Errorw("failed to revoke session", "token_id", claims.ID, "err", err)
		}
	}
	return s.tokens.ExpiredCookie()
}

func (s *SessionService) claims(ctx context.Context, r *http.Request) (*jwt.Claims, error) {
	token, err := s.tokens.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	claims, err := s.tokens.GetClaims(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return claims, nil
}
