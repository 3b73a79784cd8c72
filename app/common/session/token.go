package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims carries the session id inside an HS256 token. Sessions are
// anonymous: the token proves nothing beyond "this conversation was opened
// by us".
type Claims struct {
	SessionID int64 `json:"sid"`
	jwt.RegisteredClaims
}

// Sign issues a session token valid for ttl.
func Sign(secret string, ttl time.Duration, sessionID int64) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("session secret is empty")
	}
	if ttl <= 0 {
		return "", time.Time{}, errors.New("session ttl must be positive")
	}

	now := time.Now()
	expireAt := now.Add(ttl)
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expireAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expireAt, nil
}

// Parse validates the token signature and expiry and returns the claims.
func Parse(tokenStr, secret string) (*Claims, error) {
	if tokenStr == "" {
		return nil, errors.New("token is empty")
	}
	if secret == "" {
		return nil, errors.New("session secret is empty")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
