package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"seedco-api/pkg/apperr"
)

// GenerateToken signs an HS256 JWT carrying the user id and an expiry of
// now + ttl. It returns the serialized token and its expiration time.
func GenerateToken(secret string, userID uuid.UUID, ttl time.Duration) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)

	claims := jwt.MapClaims{
		"userId": userID.String(),
		"exp":    exp.Unix(),
		"iat":    now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, exp, nil
}

// VerifyToken parses and validates a token and returns the user id it was
// issued for. Bad signature, malformed token and natural expiry all come
// back as the same ErrInvalidToken so callers cannot tell them apart.
func VerifyToken(secret, token string) (uuid.UUID, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, apperr.ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, apperr.ErrInvalidToken
	}

	raw, ok := claims["userId"].(string)
	if !ok {
		return uuid.Nil, apperr.ErrInvalidToken
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.ErrInvalidToken
	}

	return userID, nil
}
