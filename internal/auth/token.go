package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"workdeck/internal/core/domain"
)

type TokenError string

func (e TokenError) Error() string { return string(e) }

const (
	ErrMissingSigningKey = TokenError("cannot sign token without a signing key")
	ErrInvalidToken      = TokenError("invalid token")

	DefaultAccessTokenTTL = 24 * time.Hour
)

// TokenManager issues and verifies the HS256 bearer tokens that carry the
// authenticated principal. The role claim is a snapshot from login time.
type TokenManager struct {
	key []byte
	ttl time.Duration
}

func NewTokenManager(key string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &TokenManager{key: []byte(key), ttl: ttl}
}

func (tm *TokenManager) Issue(user domain.User, now time.Time) (string, error) {
	if len(tm.key) == 0 {
		return "", ErrMissingSigningKey
	}
	claims := jwt.MapClaims{
		"jti":  uuid.NewString(),
		"sub":  strconv.FormatUint(user.ID, 10),
		"name": user.Name,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(tm.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.key)
}

// Verify parses the token and reconstructs the principal from its claims.
func (tm *TokenManager) Verify(tokenString string) (domain.Principal, error) {
	if len(tm.key) == 0 {
		return domain.Principal{}, ErrMissingSigningKey
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return tm.key, nil
	})
	if err != nil || !token.Valid {
		return domain.Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Principal{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || userID == 0 {
		return domain.Principal{}, ErrInvalidToken
	}
	name, _ := claims["name"].(string)
	roleClaim, _ := claims["role"].(string)
	role := domain.UserRole(roleClaim)
	if !role.Valid() {
		return domain.Principal{}, ErrInvalidToken
	}

	return domain.Principal{UserID: userID, Name: name, Role: role}, nil
}
