package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active user with defaults", func(t *testing.T) {
		user, err := NewUser("A@X.CH", "pw12345678", "A", "A SA", "")
		require.NoError(t, err)

		assert.Equal(t, "a@x.ch", user.Email)
		assert.Equal(t, AccountTypeEntreprise, user.AccountType)
		assert.Equal(t, UserStatusActive, user.Status)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "pw12345678", user.PasswordHash)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "pw12345678", "A", "A SA", AccountTypeEntreprise)
		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("a@x.ch", "short", "A", "A SA", AccountTypeEntreprise)
		assert.Error(t, err)
	})

	t.Run("rejects empty full name", func(t *testing.T) {
		_, err := NewUser("a@x.ch", "pw12345678", "", "A SA", AccountTypeEntreprise)
		assert.Error(t, err)
	})

	t.Run("rejects unknown account type", func(t *testing.T) {
		_, err := NewUser("a@x.ch", "pw12345678", "A", "A SA", "superuser")
		assert.Error(t, err)
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("a@x.ch", "pw12345678", "A", "A SA", AccountTypeEntreprise)
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("pw12345678"))
	assert.False(t, user.VerifyPassword("wrong-password"))
}

func TestUser_IsAdministrator(t *testing.T) {
	admin, err := NewUser("admin@x.ch", "pw12345678", "Admin", "FinancesPro", AccountTypeAdministrateur)
	require.NoError(t, err)
	assert.True(t, admin.IsAdministrator())

	tenant, err := NewUser("a@x.ch", "pw12345678", "A", "A SA", AccountTypeEntreprise)
	require.NoError(t, err)
	assert.False(t, tenant.IsAdministrator())
}

func TestUser_SetStatus(t *testing.T) {
	user, err := NewUser("a@x.ch", "pw12345678", "A", "A SA", AccountTypeEntreprise)
	require.NoError(t, err)

	require.NoError(t, user.SetStatus(UserStatusSuspended))
	assert.True(t, user.IsSuspended())
	assert.Equal(t, 2, user.Version)

	assert.Error(t, user.SetStatus("banned"))
	assert.Equal(t, UserStatusSuspended, user.Status)
}
