package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/shrigondanews/news-api/internal/core/domain"
)

// devFallbackSecret is used when no signing secret is configured. Acceptable
// for local development only: anyone holding the source can forge tokens.
// Production deployments must set JWT_SECRET.
const devFallbackSecret = "shrigonda-news-secret-2025"

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenClaims is the decoded token payload. The embedded role is
// authoritative for every authorization decision during the token's lifetime.
type TokenClaims struct {
	UserID   string      `json:"user_id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal returns the identity snapshot carried by the claims.
func (c *TokenClaims) Principal() domain.Principal {
	return domain.Principal{ID: c.UserID, Username: c.Username, Role: c.Role}
}

// TokenService issues and verifies signed, time-limited identity tokens.
// The secret is fixed at construction and safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
}

func NewTokenService(secret string, ttl time.Duration, log zerolog.Logger) *TokenService {
	if secret == "" {
		log.Warn().Msg("JWT_SECRET not set, using development fallback secret")
		secret = devFallbackSecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, log: log}
}

// Issue signs a token carrying the principal snapshot. The role defaults to
// editor when unset, even though callers are expected to always supply one.
func (s *TokenService) Issue(p domain.Principal) (string, error) {
	if p.ID == "" && p.Username == "" {
		return "", domain.ErrInvalidInput
	}
	role := p.Role
	if role == "" {
		role = domain.RoleEditor
	}

	now := time.Now().UTC()
	claims := TokenClaims{
		UserID:   p.ID,
		Username: p.Username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token. It returns nil for malformed,
// expired, or forged tokens; the cause is logged internally but callers see
// a uniform nil and must treat all failures as unauthorized.
func (s *TokenService) Verify(token string) *TokenClaims {
	if token == "" {
		return nil
	}

	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		s.log.Debug().Err(err).Msg("token verification failed")
		return nil
	}
	return claims
}
