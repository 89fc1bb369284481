// Package auth issues and verifies the bearer tokens used to authenticate
// API requests.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the information stored in the token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

var jwtSecret []byte

// Init stores the HMAC signing secret. Must be called once at startup
// before any token is generated or verified.
func Init(secret string) error {
	if secret == "" {
		return fmt.Errorf("token signing secret is not set")
	}
	jwtSecret = []byte(secret)
	return nil
}

// GenerateToken signs a token carrying the user identifier. Tokens carry no
// expiry claim and stay valid until the secret rotates.
func GenerateToken(userID string) (string, error) {
	claims := Claims{UserID: userID}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// VerifyToken parses and validates a token string and returns the user
// identifier it carries.
func VerifyToken(tokenString string) (string, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if claims.UserID == "" {
		return "", fmt.Errorf("missing user id claim")
	}
	return claims.UserID, nil
}
