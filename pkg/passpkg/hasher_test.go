package passpkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPassword(t *testing.T) {
	h := Bcrypt{Cost: bcrypt.MinCost}

	password := "abcdefghijklmnopqrstuvwxyz"
	hashedPassword1, err := h.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hashedPassword1)

	err = h.Check(password, hashedPassword1)
	require.NoError(t, err)

	wrongPassword := "abc"
	err = h.Check(wrongPassword, hashedPassword1)
	require.EqualError(t, err, bcrypt.ErrMismatchedHashAndPassword.Error())

	// Test for random salt generation
	hashedPassword2, err := h.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hashedPassword1)
	require.NotEqual(t, hashedPassword1, hashedPassword2)
}

func TestBcryptTooLong(t *testing.T) {
	_, err := Bcrypt{Cost: bcrypt.MinCost}.Hash(strings.Repeat("long", 100))
	require.Error(t, err)
}

func TestPlain(t *testing.T) {
	h := Plain{}

	stored, err := h.Hash("secret")
	require.NoError(t, err)
	require.Equal(t, "secret", stored)

	require.NoError(t, h.Check("secret", stored))
	require.ErrorIs(t, h.Check("Secret", stored), ErrMismatchedCredential)
	require.ErrorIs(t, h.Check("secret ", stored), ErrMismatchedCredential)
	require.ErrorIs(t, h.Check("", stored), ErrMismatchedCredential)
}

func TestNew(t *testing.T) {
	testCases := []struct {
		kind    string
		want    Hasher
		wantErr bool
	}{
		{kind: KindBcrypt, want: Bcrypt{Cost: 4}},
		{kind: "", want: Bcrypt{Cost: 4}},
		{kind: KindPlain, want: Plain{}},
		{kind: "md5", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := New(tc.kind, 4)
		if tc.wantErr {
			require.Error(t, err)
			continue
		}

		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}
