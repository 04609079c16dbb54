package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/siteledger/backend/internal/domain/shared"
	"github.com/siteledger/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing-32ch",
		Expiration: time.Hour,
		Issuer:     "siteledger-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "Jordan", shared.RoleAccountant)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "Jordan", identity.Name)
	assert.Equal(t, shared.RoleAccountant, identity.Role)
}

func TestJWTService_GenerateToken_UnknownRole(t *testing.T) {
	svc := newTestService()

	_, err := svc.GenerateToken(uuid.New(), "Jordan", shared.Role("superuser"))
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestJWTService_ValidateToken_Errors(t *testing.T) {
	svc := newTestService()

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:     "another-secret-entirely-for-testing!",
			Expiration: time.Hour,
			Issuer:     "siteledger-test",
		})
		token, err := other.GenerateToken(uuid.New(), "", shared.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTService(config.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing-32ch",
			Expiration: -time.Minute,
			Issuer:     "siteledger-test",
		})
		token, err := expired.GenerateToken(uuid.New(), "", shared.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestJWTService_Expiration(t *testing.T) {
	svc := newTestService()
	assert.Equal(t, time.Hour, svc.Expiration())
}
