package middleware

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"replane.io/replane/internal/domain"
	apperrors "replane.io/replane/internal/pkg/errors"
)

// SessionClaims is the JWT payload of a signed-in user session.
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// SessionConfig holds session token signing configuration.
type SessionConfig struct {
	SigningKey []byte
	Issuer     string
	ExpiresIn  time.Duration
}

// GenerateSessionToken mints a signed session JWT for a user.
func GenerateSessionToken(cfg SessionConfig, user domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(cfg.ExpiresIn)

	claims := SessionClaims{
		Email: domain.NormalizeEmail(user.Email),
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   domain.NormalizeEmail(user.Email),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(cfg.SigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseSessionToken validates a session JWT and returns the user it
// names. HS256 only; anything else is rejected before key lookup.
func ParseSessionToken(cfg SessionConfig, raw string) (domain.User, error) {
	token, err := jwt.ParseWithClaims(raw, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return cfg.SigningKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.User{}, apperrors.Unauthorized(apperrors.CodeUnauthorized, "invalid session token")
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Email == "" {
		return domain.User{}, apperrors.Unauthorized(apperrors.CodeUnauthorized, "invalid session claims")
	}
	return domain.User{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
