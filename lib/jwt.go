package lib

import (
	"fmt"
	"net/http"
	"storebill_server/structs"
	"storebill_server/structs/tables"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateToken signs a session token for the given user.
func GenerateToken(user *tables.User, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.Id.String(),
		"phone": user.Phone,
		"iat":   now.Unix(),
		"exp":   now.Add(expiry).Unix(),
		"jti":   uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken parses and validates a JWT token string and returns the claims
func ParseToken(tokenStr string, secret string) (*structs.AuthClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	subStr, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid sub claim")
	}
	sub, err := uuid.Parse(subStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID in sub claim: %w", err)
	}

	phone, ok := claims["phone"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid phone claim")
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid iat claim")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid exp claim")
	}

	jtiStr, ok := claims["jti"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid jti claim")
	}
	jti, err := uuid.Parse(jtiStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID in jti claim: %w", err)
	}

	return &structs.AuthClaims{
		Sub:   sub,
		Phone: phone,
		Iat:   time.Unix(int64(iat), 0),
		Exp:   time.Unix(int64(exp), 0),
		Jti:   jti,
	}, nil
}

// ExtractClaims reads and validates the access token cookie on a request.
func ExtractClaims(r *http.Request, secret string) (*structs.AuthClaims, error) {
	accessToken, err := GetCookieValue(AccessCookieName, r)
	if err != nil {
		return nil, err
	}

	claims, err := ParseToken(accessToken, secret)
	if err != nil {
		return nil, err
	}

	return claims, nil
}
