package utils

import (
	"errors"
	"time"

	"exhibitor-portal/config"
	"exhibitor-portal/models"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	BoothNumber   string `json:"booth_number,omitempty"`
	Show          string `json:"show,omitempty"`
	ExhibitorName string `json:"exhibitor_name,omitempty"`
	User          string `json:"user"`
	Role          string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(session models.Session) (string, error) {
	expiry, err := time.ParseDuration(config.AppConfig.JWTExpiry)
	if err != nil {
		expiry = 24 * time.Hour
	}

	claims := Claims{
		BoothNumber:   session.BoothNumber,
		Show:          session.Show,
		ExhibitorName: session.ExhibitorName,
		User:          session.User,
		Role:          session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// SessionFromClaims rebuilds the per-request session context.
func SessionFromClaims(claims *Claims) models.Session {
	return models.Session{
		BoothNumber:   claims.BoothNumber,
		Show:          claims.Show,
		ExhibitorName: claims.ExhibitorName,
		User:          claims.User,
		Role:          claims.Role,
	}
}
