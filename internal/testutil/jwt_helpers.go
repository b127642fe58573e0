package testutil

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"yeoman/internal/auth"
)

// JWTTestHelper provides utilities for JWT testing
type JWTTestHelper struct {
	Secret []byte
}

// NewJWTTestHelper creates a new JWT test helper with a default test secret
func NewJWTTestHelper() *JWTTestHelper {
	return &JWTTestHelper{
		Secret: []byte("test-secret-for-unit-tests"),
	}
}

// GenerateValidJWT generates a valid session token for testing
func (h *JWTTestHelper) GenerateValidJWT(userID, name string) (string, error) {
	return auth.GenerateJWT(userID, name, h.Secret)
}

// GenerateExpiredJWT generates an expired session token for testing
func (h *JWTTestHelper) GenerateExpiredJWT(userID, name string) (string, error) {
	claims := &auth.Claims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.Secret)
}

// GenerateMalformedJWT generates a malformed token for error scenarios
func (h *JWTTestHelper) GenerateMalformedJWT() string {
	return "invalid.jwt.token.format"
}

// GenerateJWTWithWrongSecret generates a token signed with the wrong secret
func (h *JWTTestHelper) GenerateJWTWithWrongSecret(userID, name string) (string, error) {
	return auth.GenerateJWT(userID, name, []byte("wrong-secret"))
}

// GenerateJWTWithNoneAlgorithm generates a token with the "none"
// algorithm to verify it is rejected
func (h *JWTTestHelper) GenerateJWTWithNoneAlgorithm(userID, name string) (string, error) {
	claims := &auth.Claims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	return token.SignedString(jwt.UnsafeAllowNoneSignatureType)
}
