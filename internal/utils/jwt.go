package utils

import (
	"errors"
	"fmt"
	"photo-wall-server/internal/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims 会话 Cookie 中携带的登录态
type SessionClaims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Type     string `json:"type"` // "session"
	jwt.RegisteredClaims
}

func getSecret() []byte {
	return []byte(config.Get().Session.Secret)
}

func GenerateSessionToken(id uint, username string, duration time.Duration) (string, error) {
	claims := SessionClaims{
		ID:       id,
		Username: username,
		Type:     "session",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			Issuer:    "photo-wall-server",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSecret())
}

func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSecret(), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		if claims.Type != "session" {
			return nil, errors.New("invalid token type")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
