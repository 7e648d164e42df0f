package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidate(t *testing.T) {
	t.Parallel()

	valid := User{ID: 1, Name: "John Doe", Email: "john@example.com"}

	tests := []struct {
		name    string
		mutate  func(u *User)
		wantErr error
	}{
		{name: "valid user", mutate: func(u *User) {}, wantErr: nil},
		{
			name:    "non-positive ID",
			mutate:  func(u *User) { u.ID = -1 },
			wantErr: ErrEmptyUserID,
		},
		{
			name:    "empty name",
			mutate:  func(u *User) { u.Name = "" },
			wantErr: ErrEmptyUserName,
		},
		{
			name:    "empty email",
			mutate:  func(u *User) { u.Email = "" },
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "email without at sign",
			mutate:  func(u *User) { u.Email = "john.example.com" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email without domain dot",
			mutate:  func(u *User) { u.Email = "john@example" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email ending with at sign",
			mutate:  func(u *User) { u.Email = "john@" },
			wantErr: ErrInvalidEmail,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user := valid
			tc.mutate(&user)

			err := user.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
