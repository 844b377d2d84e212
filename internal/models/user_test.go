package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestUserAccountState(t *testing.T) {
	t.Run("empty meta is active", func(t *testing.T) {
		user := &User{}
		state, err := user.AccountState()
		require.NoError(t, err)
		assert.Equal(t, AccountStateActive, state.State)
	})

	t.Run("roundtrip", func(t *testing.T) {
		user := &User{}
		err := user.SetAccountState(AccountState{
			State:            AccountStatePending,
			ConfirmationCode: "code-1",
			NewEmailAddress:  "new@example.com",
		})
		require.NoError(t, err)

		state, err := user.AccountState()
		require.NoError(t, err)
		assert.Equal(t, AccountStatePending, state.State)
		assert.Equal(t, "code-1", state.ConfirmationCode)
		assert.Equal(t, "new@example.com", state.NewEmailAddress)
	})

	t.Run("blank state defaults to active", func(t *testing.T) {
		user := &User{Meta: datatypes.JSON(`{"state":""}`)}
		state, err := user.AccountState()
		require.NoError(t, err)
		assert.Equal(t, AccountStateActive, state.State)
	})

	t.Run("malformed meta", func(t *testing.T) {
		user := &User{Meta: datatypes.JSON(`{`)}
		_, err := user.AccountState()
		assert.Error(t, err)
	})
}
