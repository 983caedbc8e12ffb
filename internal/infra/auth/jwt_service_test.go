package auth

import (
	"testing"
	"time"

	"closecart/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtTestConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := jwtTestConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()
	shopID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, shopID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token and its claims
	parsed, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, shopID.String(), claims["shopId"])
	assert.Equal(t, "access", claims["type"])

	// Validate refresh token: subject only, no shop claim
	parsed, err = jwtService.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok = parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.NotContains(t, claims, "shopId")
	assert.Equal(t, "refresh", claims["type"])
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := jwtTestConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token-format", cfg.SecretKey.Access)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := jwtTestConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(accessToken, "another_secret_entirely")
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(jwtTestConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(jwtTestConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	require.NoError(t, err)

	duration := jwtService.GetRefreshTokenDuration()
	assert.Equal(t, time.Hour*24*7, duration)
}
