package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email string `gorm:"uniqueIndex;not null"`
	// Encrypted with the server key, not hashed. Login decrypts and compares.
	Password string         `gorm:"not null"`
	IsValid  bool           `gorm:"default:false"`
	Meta     datatypes.JSON `gorm:"type:jsonb"`

	// Relations
	Notices []Notice `gorm:"foreignKey:UserID"`
}

// AccountStateKind tags the account lifecycle state.
type AccountStateKind string

const (
	AccountStateActive  AccountStateKind = "active"
	AccountStatePending AccountStateKind = "pending"
	AccountStateFrozen  AccountStateKind = "frozen"
)

// AccountState is the typed form of the meta column. The JSON keys match
// the stored blob layout so existing rows parse unchanged.
type AccountState struct {
	State            AccountStateKind `json:"state"`
	ConfirmationCode string           `json:"emailChangeConfirmCode,omitempty"`
	NewEmailAddress  string           `json:"newEmailAddress,omitempty"`
}

// AccountState parses the meta column. A missing or empty state means the
// account is active.
func (u *User) AccountState() (AccountState, error) {
	state := AccountState{State: AccountStateActive}
	if len(u.Meta) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(u.Meta, &state); err != nil {
		return AccountState{}, err
	}
	if state.State == "" {
		state.State = AccountStateActive
	}
	return state, nil
}

// SetAccountState serializes the state back into the meta column.
func (u *User) SetAccountState(state AccountState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	u.Meta = datatypes.JSON(raw)
	return nil
}
