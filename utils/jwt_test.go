package utils

import (
	"testing"
	"time"

	"homeserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCarriesSessionClaims(t *testing.T) {
	token, err := GenerateToken(SessionClaims{
		Subject: "user@example.com",
		Email:   "user@example.com",
		Role:    models.RoleProvider,
	}, time.Hour)
	require.NoError(t, err)

	claims, err := ClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, models.RoleProvider, claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken(SessionClaims{
		Subject: "user@example.com",
		Email:   "user@example.com",
		Role:    models.RoleCustomer,
	}, -time.Minute)
	require.NoError(t, err)

	_, err = ClaimsFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ClaimsFromToken("not-a-token")
	assert.Error(t, err)
}
