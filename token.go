package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session tokens are valid for 7 days from issuance; there is no refresh
// rotation, clients re-authenticate after expiry.
const tokenTTL = 7 * 24 * time.Hour

// issueToken signs a session token for the given user id.
func issueToken(userID uint, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// parseToken verifies signature and expiry and returns the embedded user
// id. Expired-but-well-signed tokens are reported distinctly from
// malformed or badly signed ones.
func parseToken(tokenString string, opts ...jwt.ParserOption) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return jwtSecret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, errTokenExpired
		}
		return 0, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if !token.Valid {
		return 0, errInvalidToken
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", errInvalidToken)
	}
	return uint(id), nil
}
