package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail validation for any reason
var ErrInvalidToken = errors.New("invalid or expired token")

// Service issues and validates access tokens for business users
type Service struct {
	jwtSecret   []byte
	jwtIssuer   string
	jwtAudience string
}

// NewService creates an auth service with the given signing settings
func NewService(secret, issuer, audience string) *Service {
	return &Service{
		jwtSecret:   []byte(secret),
		jwtIssuer:   issuer,
		jwtAudience: audience,
	}
}

// IssueAccessToken creates a signed HS256 token for the user
func (s *Service) IssueAccessToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iss": s.jwtIssuer,
		"aud": s.jwtAudience,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken validates a token and returns the user id from its
// subject claim.
func (s *Service) ValidateAccessToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	},
		jwt.WithIssuer(s.jwtIssuer),
		jwt.WithAudience(s.jwtAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}

	return subject, nil
}
