package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"mycontacts/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:       "b2d7f7e0-0000-4000-8000-000000000001",
		Username: "alice",
		Email:    "a@x.com",
	}
}

func TestJWTUtil_GenerateToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 10*time.Minute)
	user := testUser()

	tokenString, err := jwtUtil.GenerateToken(user)

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := jwtUtil.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, user.Username, claims.User.Username)
	assert.Equal(t, user.Email, claims.User.Email)
	assert.Equal(t, user.ID, claims.User.ID)
	// Expiry no later than 10 minutes after issuance
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTUtil_GenerateToken_MissingSecret(t *testing.T) {
	jwtUtil := NewJWTUtil("", 10*time.Minute)

	_, err := jwtUtil.GenerateToken(testUser())
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_InvalidToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 10*time.Minute)

	_, err := jwtUtil.ValidateToken("invalid.token.string")
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_ExpiredToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", -time.Minute) // Token expires in the past

	tokenString, _ := jwtUtil.GenerateToken(testUser())

	_, err := jwtUtil.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTUtil_ValidateToken_WrongSecret(t *testing.T) {
	jwtUtil1 := NewJWTUtil("secret1", 10*time.Minute)
	jwtUtil2 := NewJWTUtil("secret2", 10*time.Minute)

	tokenString, _ := jwtUtil1.GenerateToken(testUser())

	_, err := jwtUtil2.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_NoneAlgorithmRejected(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 10*time.Minute)

	claims := &TokenClaims{
		User: TokenUser{Username: "alice", Email: "a@x.com", ID: "1"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

	_, err := jwtUtil.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected signing method")
}
