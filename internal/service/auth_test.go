package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-service/internal/models"
	"pharmacy-service/internal/store"
)

func newAuthFixture(t *testing.T) (*AuthService, *store.Store) {
	t.Helper()
	st := store.NewStore()
	st.CreateUser(models.User{
		Username: "admin",
		Password: "password",
		Name:     "Dr. Sarah Johnson",
		Role:     models.RoleAdmin,
	})
	return NewAuthService(st, "test-secret", time.Hour), st
}

func TestLoginIssuesToken(t *testing.T) {
	auth, _ := newAuthFixture(t)

	user, token, err := auth.Login("admin", "password")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	require.NotEmpty(t, token)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "admin", claims.Subject)
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, _, err := auth.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, _, err := auth.Login("ghost", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsForgery(t *testing.T) {
	auth, _ := newAuthFixture(t)
	otherAuth := NewAuthService(store.NewStore(), "other-secret", time.Hour)

	_, token, err := auth.Login("admin", "password")
	require.NoError(t, err)

	_, err = otherAuth.ParseToken(token)
	assert.Error(t, err)

	_, err = auth.ParseToken("not-a-token")
	assert.Error(t, err)
}
