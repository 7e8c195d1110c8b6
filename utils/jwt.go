package utils

import (
	"errors"
	"os"
	"time"

	"homeserve/config"
	"homeserve/models"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		secret = "homeserve-dev"
	}
	return []byte(secret)
}

// SessionClaims is the single session/capability model shared by all three
// actor roles. Role is verified by the route guards instead of the ad hoc
// per-role markers the client used to keep.
type SessionClaims struct {
	Subject string
	Email   string
	Role    models.Role
}

// GenerateToken creates a signed JWT carrying the subject, email and role.
// The token expires after the specified duration.
func GenerateToken(claims SessionClaims, duration time.Duration) (string, error) {
	mc := jwt.MapClaims{
		"sub":   claims.Subject,
		"email": claims.Email,
		"role":  string(claims.Role),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ClaimsFromToken extracts the session claims from a valid token string.
func ClaimsFromToken(tokenString string) (*SessionClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := mc["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	email, _ := mc["email"].(string)
	role, _ := mc["role"].(string)
	if role == "" {
		return nil, errors.New("token does not contain a valid 'role' claim")
	}

	return &SessionClaims{Subject: sub, Email: email, Role: models.Role(role)}, nil
}
