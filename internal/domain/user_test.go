package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("benl", "ben@example.com", "a long enough password")
	require.NoError(t, err)
	assert.Equal(t, "benl", user.Username)
	assert.Equal(t, "ben@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"empty username", "  ", "ben@example.com", "a long enough password", ErrEmptyUsername},
		{"empty email", "benl", "", "a long enough password", ErrEmptyEmail},
		{"no at sign", "benl", "ben.example.com", "a long enough password", ErrInvalidEmail},
		{"no dot after at", "benl", "ben@example", "a long enough password", ErrInvalidEmail},
		{"short password", "benl", "ben@example.com", "short", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// A stored user carries only the hash; that passes validation.
	stored := User{ID: 1, Username: "benl", Email: "ben@example.com", HashedPassword: "$2a$10$abc"}
	assert.NoError(t, stored.Validate())

	// Neither plaintext nor hash is an error.
	stored.HashedPassword = ""
	assert.ErrorIs(t, stored.Validate(), ErrEmptyPassword)
}

func TestRestrictionValidate(t *testing.T) {
	r, err := NewRestriction(42, 7, "vegetarian", "")
	require.NoError(t, err)
	assert.Equal(t, "vegetarian", r.Dietary)

	_, err = NewRestriction(42, 7, "", "")
	assert.ErrorIs(t, err, ErrEmptyRestriction)

	_, err = NewRestriction(0, 7, "vegetarian", "")
	assert.ErrorIs(t, err, ErrEmptyRestrictionHouseID)

	_, err = NewRestriction(42, 0, "", "no weekday mornings")
	assert.ErrorIs(t, err, ErrEmptyRestrictionUserID)
}
