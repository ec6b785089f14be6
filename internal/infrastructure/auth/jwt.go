package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the authenticated identity inside the session token.
// Capabilities travel in the token so the middleware can authorize without a
// user lookup per request.
type SessionClaims struct {
	UserID       uint     `json:"user_id"`
	Capabilities []string `json:"capabilities"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret          []byte
	sessionExpHours int
}

func NewJWTService(secret string, sessionExpHours int) *JWTService {
	return &JWTService{
		secret:          []byte(secret),
		sessionExpHours: sessionExpHours,
	}
}

// Generate signs a session token for the user.
func (s *JWTService) Generate(userID uint, capabilities []string) (string, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.sessionExpHours) * time.Hour)

	claims := &SessionClaims{
		UserID:       userID,
		Capabilities: capabilities,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

func (s *JWTService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// SessionExpHours returns the session token lifetime in hours.
func (s *JWTService) SessionExpHours() int {
	return s.sessionExpHours
}
