package utils

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stayhub-backend/models"
)

// SessionTokenTTL bounds every session: there is no refresh mechanism, an
// expired token forces the user to log in again.
const SessionTokenTTL = 30 * time.Minute

// SignSessionToken issues the HS256 session token carrying {subject, role}.
func SignSessionToken(secret string, userID uint, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10),
		"role": string(role),
		"exp":  time.Now().Add(SessionTokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifySessionToken checks signature and expiry and validates the payload
// shape: the subject must be a positive integer and the role a known one.
func VerifySessionToken(secret, token string) (uint, models.Role, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return 0, "", ErrUnauthenticated("invalid or expired session")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, "", ErrUnauthenticated("invalid session payload")
	}
	id, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || id == 0 {
		return 0, "", ErrUnauthenticated("invalid session subject")
	}

	roleRaw, _ := claims["role"].(string)
	role, ok := models.ParseRole(roleRaw)
	if !ok {
		return 0, "", ErrUnauthenticated("unrecognized role")
	}

	return uint(id), role, nil
}
