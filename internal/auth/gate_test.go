package auth

import (
	"errors"
	"testing"
	"time"

	"contacts_backend/internal/models"
	"contacts_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFinder struct {
	users map[string]*models.User
	err   error
}

func (f *fakeFinder) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func newGateWithUser(t *testing.T) (*Gate, *models.User, string) {
	t.Helper()

	tokens := NewTokenManager("gate-secret", time.Hour)
	user := &models.User{Email: "a@example.com"}
	user.ID = "user-1"

	tok, err := tokens.Generate(user.ID)
	require.NoError(t, err)
	user.Token = &tok

	finder := &fakeFinder{users: map[string]*models.User{user.ID: user}}
	return NewGate(tokens, finder), user, tok
}

func TestGate_Success(t *testing.T) {
	g, user, tok := newGateWithUser(t)

	got, err := g.Authenticate(nil, "Bearer "+tok)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = g.Authenticate(nil, tok)
	require.NoError(t, err, "bare token is tolerated")
	assert.Equal(t, user.ID, got.ID)
}

func TestGate_Rejections(t *testing.T) {
	g, user, tok := newGateWithUser(t)

	_, err := g.Authenticate(nil, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = g.Authenticate(nil, "Bearer ")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = g.Authenticate(nil, "Bearer garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewTokenManager("another-secret", time.Hour).Generate(user.ID)
	require.NoError(t, err)
	_, err = g.Authenticate(nil, "Bearer "+other)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// well-formed token that is not the stored one
	fresh, err := g.tokens.Generate(user.ID)
	require.NoError(t, err)
	_, err = g.Authenticate(nil, "Bearer "+fresh)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// cleared on logout
	user.Token = nil
	_, err = g.Authenticate(nil, "Bearer "+tok)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestGate_UnknownUser(t *testing.T) {
	tokens := NewTokenManager("gate-secret", time.Hour)
	g := NewGate(tokens, &fakeFinder{users: map[string]*models.User{}})

	tok, err := tokens.Generate("ghost")
	require.NoError(t, err)

	_, err = g.Authenticate(nil, "Bearer "+tok)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.True(t, IsAuthError(err))
}

func TestGate_StoreFailurePassesThrough(t *testing.T) {
	tokens := NewTokenManager("gate-secret", time.Hour)
	boom := errors.New("connection refused")
	g := NewGate(tokens, &fakeFinder{err: boom})

	tok, err := tokens.Generate("u")
	require.NoError(t, err)

	_, err = g.Authenticate(nil, "Bearer "+tok)
	assert.ErrorIs(t, err, boom)
	assert.False(t, IsAuthError(err))
}

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "abc", ExtractToken("Bearer abc"))
	assert.Equal(t, "abc", ExtractToken("bearer abc"))
	assert.Equal(t, "abc", ExtractToken("  abc "))
	assert.Equal(t, "", ExtractToken(""))
}
