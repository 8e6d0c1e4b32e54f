package identity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	t.Run("hashes the password", func(t *testing.T) {
		e, err := NewEmployee("Ahmad", "ahmad", "secret1", decimal.NewFromInt(20), "barista")
		require.NoError(t, err)
		assert.NotEqual(t, "secret1", e.PasswordHash)
		assert.True(t, e.CheckPassword("secret1"))
		assert.False(t, e.CheckPassword("wrong"))
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := NewEmployee("", "ahmad", "secret1", decimal.Zero, "")
		assert.Error(t, err)
		_, err = NewEmployee("Ahmad", "", "secret1", decimal.Zero, "")
		assert.Error(t, err)
		_, err = NewEmployee("Ahmad", "ahmad", "short", decimal.Zero, "")
		assert.Error(t, err)
		_, err = NewEmployee("Ahmad", "ahmad", "secret1", decimal.NewFromInt(-1), "")
		assert.Error(t, err)
	})
}

func TestEmployee_Update(t *testing.T) {
	e, err := NewEmployee("Ahmad", "ahmad", "secret1", decimal.NewFromInt(20), "barista")
	require.NoError(t, err)

	t.Run("nil fields are untouched", func(t *testing.T) {
		require.NoError(t, e.Update(nil, nil, nil, nil))
		assert.Equal(t, "Ahmad", e.Name)
		assert.True(t, e.HourlyWage.Equal(decimal.NewFromInt(20)))
	})

	t.Run("password change rehashes", func(t *testing.T) {
		password := "newsecret"
		require.NoError(t, e.Update(nil, nil, nil, &password))
		assert.True(t, e.CheckPassword("newsecret"))
		assert.False(t, e.CheckPassword("secret1"))
	})
}

func TestNewUser(t *testing.T) {
	u, err := NewUser("admin", "secret1")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.True(t, u.CheckPassword("secret1"))

	_, err = NewUser("  ", "secret1")
	assert.Error(t, err)
}
