package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie carrying the signed admin session token.
const CookieName = "bcard_session"

// TokenTTL bounds the admin session lifetime.
const TokenTTL = 12 * time.Hour

// Claims is the capability carried by an admin session token. The only
// capability in this system is the admin role itself.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies admin session tokens.
type Manager struct {
	secret string
}

// NewManager creates a session manager signing with the given secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: secret}
}

// IssueAdminToken mints an HS256-signed token granting the admin role.
func (m *Manager) IssueAdminToken() (string, error) {
	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Verify parses a token and confirms it grants the admin role.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.Role != "admin" {
		return nil, fmt.Errorf("token does not grant admin role")
	}

	return claims, nil
}
