package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// DefaultTokenTTL is the access-token lifetime used when none is configured.
// The legacy system issued 60-second tokens with no refresh endpoint, which
// made sessions unusable; 15 minutes plus the refresh flow replaces that.
const DefaultTokenTTL = 15 * time.Minute

// TokenService issues and verifies HS256-signed session tokens. Verification
// is stateless; the signing secret is process-wide configuration.
type TokenService struct {
	secret string
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

func (s *TokenService) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":      user.ID,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token. Expired, malformed and tampered
// tokens all fail with domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (domain.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !tkn.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	return domain.Claims{
		UID:      stringClaim(claims, "uid"),
		Email:    stringClaim(claims, "email"),
		Username: stringClaim(claims, "username"),
		Role:     stringClaim(claims, "role"),
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
