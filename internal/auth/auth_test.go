package auth

import (
	"testing"

	"rental-backend/internal/config"
	"rental-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2-but-longer")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2-but-longer", hash)

	assert.True(t, VerifyPassword(hash, "hunter2-but-longer"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not a hash", "hunter2-but-longer"))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "rental-backend"
	return cfg
}

func TestJWTRoundTrip(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	user := &models.User{ID: 7, Email: "owner@example.com", Role: "admin", IsActive: true}

	token, err := mgr.GenerateToken(user)
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	token, err := mgr.GenerateToken(&models.User{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token + "x")
	assert.Error(t, err)

	other := testConfig()
	other.JWT.Secret = "different-secret"
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestTempTokenIsNotAFullToken(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	user := &models.User{ID: 3, Email: "two@factor.example"}

	temp, err := mgr.GenerateTempToken(user)
	require.NoError(t, err)

	claims, err := mgr.ValidateTempToken(temp)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "2fa_pending", claims.Type)

	// A full token must not validate as a temp token.
	full, err := mgr.GenerateToken(user)
	require.NoError(t, err)
	_, err = mgr.ValidateTempToken(full)
	assert.Error(t, err)
}
