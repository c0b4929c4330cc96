package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/fjordrenovering/website/internal/auth"
	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:       testSecret,
		JWTIssuer:       "test-issuer",
		TokenTTLMinutes: 60,
		CookieName:      "admin_session",
	}
}

func testAdmin(role domain.AdminRole) *domain.AdminUser {
	u := &domain.AdminUser{
		Email:       "ola@example.com",
		DisplayName: "Ola Nordmann",
		Role:        role,
		IsActive:    true,
	}
	u.ID = uuid.New()
	return u
}

func TestTokenManager_IssueAndValidate(t *testing.T) {
	tm := auth.NewTokenManager(testAuthConfig())
	user := testAdmin(domain.AdminRoleEditor)

	token, expiresAt, err := tm.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	userCtx, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userCtx.UserID)
	assert.Equal(t, user.Email, userCtx.Email)
	assert.Equal(t, user.DisplayName, userCtx.DisplayName)
	assert.Equal(t, domain.AdminRoleEditor, userCtx.Role)
	assert.False(t, userCtx.IsAdmin())
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	issuer := auth.NewTokenManager(testAuthConfig()).WithClock(func() time.Time { return past })

	token, _, err := issuer.Issue(testAdmin(domain.AdminRoleAdmin))
	require.NoError(t, err)

	_, err = auth.NewTokenManager(testAuthConfig()).ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, _, err := auth.NewTokenManager(testAuthConfig()).Issue(testAdmin(domain.AdminRoleAdmin))
	require.NoError(t, err)

	other := testAuthConfig()
	other.JWTSecret = "another-secret-that-is-also-long-enough"
	_, err = auth.NewTokenManager(other).ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_WrongIssuer(t *testing.T) {
	token, _, err := auth.NewTokenManager(testAuthConfig()).Issue(testAdmin(domain.AdminRoleAdmin))
	require.NoError(t, err)

	other := testAuthConfig()
	other.JWTIssuer = "someone-else"
	_, err = auth.NewTokenManager(other).ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	claims := auth.Claims{
		Email: "x@example.com",
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.NewTokenManager(testAuthConfig()).ValidateToken(token)
	assert.True(t, errors.Is(err, auth.ErrInvalidToken))
}

func TestTokenManager_MissingSecret(t *testing.T) {
	cfg := testAuthConfig()
	cfg.JWTSecret = ""
	_, _, err := auth.NewTokenManager(cfg).Issue(testAdmin(domain.AdminRoleAdmin))
	assert.Error(t, err)
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, auth.CheckPassword(hash, "correct horse battery"))
	assert.False(t, auth.CheckPassword(hash, "wrong password"))

	_, err = auth.HashPassword("short")
	assert.Error(t, err)
}
