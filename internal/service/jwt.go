package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService mints and validates session tokens. Tokens carry only the
// subject user id; role and profile are re-resolved from the store on
// every request, so a role change binds without reissuing the token.
type JWTService struct {
	secretKey string
	validity  time.Duration
}

func NewJWTService(secretKey string, validity time.Duration) *JWTService {
	return &JWTService{
		secretKey: secretKey,
		validity:  validity,
	}
}

// GenerateToken creates a signed session token for the user id.
func (s *JWTService) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.validity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken checks signature and expiry and returns the embedded
// user id. Every failure mode collapses to an error, callers treat the
// request as unauthenticated.
func (s *JWTService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("missing user id claim")
	}

	return uint(userIDFloat), nil
}
