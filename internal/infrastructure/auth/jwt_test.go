package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/config"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-used-only-in-unit-tests",
		TokenExpiration: time.Hour,
		Issuer:          "alaml-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(GenerateTokenInput{
		UserID:      userID,
		Username:    "admin",
		Role:        "admin",
		AccountType: AccountTypeAdmin,
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin())

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTService_ValidateToken_Errors(t *testing.T) {
	svc := testService()

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:          "a-different-secret-entirely",
			TokenExpiration: time.Hour,
			Issuer:          "alaml-test",
		})
		token, _, err := other.GenerateToken(GenerateTokenInput{
			UserID:      uuid.New(),
			Username:    "eve",
			AccountType: AccountTypeEmployee,
		})
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		short := NewJWTService(config.JWTConfig{
			Secret:          "test-secret-used-only-in-unit-tests",
			TokenExpiration: -time.Minute,
			Issuer:          "alaml-test",
		})
		token, _, err := short.GenerateToken(GenerateTokenInput{
			UserID:      uuid.New(),
			Username:    "late",
			AccountType: AccountTypeEmployee,
		})
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
