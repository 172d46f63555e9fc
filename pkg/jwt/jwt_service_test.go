package jwt

import (
	"FoodGuard-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	svc := NewJWTServiceWithSecret("secret", time.Hour)

	token := svc.GenerateTokenUser("7d7f2c7e-1111-4c1e-9a57-2b0b3c1d2e3f", domain.RoleUser)
	require.NotEmpty(t, token)

	id, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "7d7f2c7e-1111-4c1e-9a57-2b0b3c1d2e3f", id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestGetUserIDByToken_Expired(t *testing.T) {
	svc := &jwtService{secretKey: "secret", issuer: "FOODGUARD", ttl: -time.Minute}

	_, _, err := svc.GetUserIDByToken(svc.GenerateTokenUser("u1", domain.RoleUser))

	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestGetUserIDByToken_WrongSecret(t *testing.T) {
	token := NewJWTServiceWithSecret("one", time.Hour).GenerateTokenUser("u1", domain.RoleUser)

	_, _, err := NewJWTServiceWithSecret("two", time.Hour).GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, _, err = NewJWTServiceWithSecret("one", time.Hour).GetUserIDByToken("garbage")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
