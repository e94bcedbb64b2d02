//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"skybook/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret")
	customerID := uuid.New()

	token, err := svc.GenerateToken(customerID, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, customerID, claims.CustomerID)
}

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret")

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("other-secret")
		token, err := other.GenerateToken(uuid.New(), time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("nil customer id rejected", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.Nil, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
