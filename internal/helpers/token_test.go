package helpers

import (
	"testing"
	"time"

	"github.com/gatherly/server/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundtrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	userId := primitive.NewObjectID()

	token, err := tm.Generate(userId, "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userId.Hex(), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate(primitive.NewObjectID(), "ada@example.com")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	require.Error(t, err)
	e := apperr.From(err)
	assert.Equal(t, apperr.KindUnauthorized, e.Kind)
	assert.Equal(t, "token expired", e.Message)
}

func TestTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, err := tm.Generate(primitive.NewObjectID(), "ada@example.com")
	require.NoError(t, err)

	_, err = other.Parse(token)
	require.Error(t, err)
	e := apperr.From(err)
	assert.Equal(t, apperr.KindUnauthorized, e.Kind)
	assert.Equal(t, "invalid token", e.Message)
}

func TestTokenGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Parse("not-a-token")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.From(err).Kind)
}
