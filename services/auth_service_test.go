package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/vlad3958/HotelBooking/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user, err := svc.Register("Guest@Example.com", "password1")
	require.NoError(t, err)
	require.Equal(t, "guest@example.com", user.Email)
	require.Equal(t, models.RoleUser, user.Role)
	require.NotEqual(t, "password1", user.Password)

	_, err = svc.Register("guest@example.com", "another")
	require.ErrorIs(t, err, ErrEmailTaken)

	token, err := svc.Login("guest@example.com", "password1")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, user.ID, claims["sub"])
	require.Equal(t, models.RoleUser, claims["role"])

	_, err = svc.Login("guest@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("nobody@example.com", "password1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserRoles(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	admin, err := svc.CreateUser("boss@example.com", "password1", "admin")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, admin.Role)

	user, err := svc.CreateUser("clerk@example.com", "password1", "")
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, user.Role)

	_, err = svc.CreateUser("odd@example.com", "password1", "superuser")
	require.ErrorIs(t, err, ErrInvalidRole)
}
