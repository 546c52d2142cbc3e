// Package identity is the adapter for the external identity service: it
// resolves a bearer token into {userID, role} and, for development and the
// token-exchange endpoint, issues tokens with the same claim shape.
package identity

import (
	"strings"
	"time"

	"legalmarket/backend/internal/apperr"

	jwt "github.com/golang-jwt/jwt/v5"
)

const issuer = "legalmarket-service"

// Identity is the resolved caller.
type Identity struct {
	UserID string
	Role   string
}

type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), ttl: 72 * time.Hour}
}

// IssueToken signs a token carrying the user id and role.
func (s *Service) IssueToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(s.ttl).Unix(),
		"iss":  issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ResolveIdentity validates a token and extracts the caller identity.
func (s *Service) ResolveIdentity(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.New(apperr.Unauthorized, "unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.New(apperr.Unauthorized, "invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.New(apperr.Unauthorized, "invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return nil, apperr.New(apperr.Unauthorized, "token missing subject")
	}
	return &Identity{UserID: sub, Role: role}, nil
}

// FromBearer resolves an Authorization header value of the form "Bearer <token>".
func (s *Service) FromBearer(header string) (*Identity, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil, apperr.New(apperr.Unauthorized, "authorization token missing")
	}
	return s.ResolveIdentity(strings.TrimSpace(header[len(prefix):]))
}
