package wallet

import (
	"encoding/base64"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	scryptN = 1 << 10
	os.Exit(m.Run())
}

func TestEncryptDecrypt(t *testing.T) {
	plaintext := "super secret message"
	passphrase := "supersecurekey"

	cyphertext, err := encrypt(plaintext, passphrase)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, cyphertext)

	revealedtext, err := decrypt(cyphertext, passphrase)
	require.NoError(t, err)
	require.Equal(t, plaintext, revealedtext)
}

func TestFailingEncrypt(t *testing.T) {
	tests := []struct {
		plaintext  string
		passphrase string
		err        error
	}{
		{"", "supersecurekey", ErrNullPlainText},
		{"super secret message", "", ErrNullPassphrase},
	}

	for _, tt := range tests {
		_, err := encrypt(tt.plaintext, tt.passphrase)
		require.ErrorIs(t, err, tt.err)
	}
}

func TestFailingDecrypt(t *testing.T) {
	cyphertext, err := encrypt("super secret message", "supersecurekey")
	require.NoError(t, err)

	tests := []struct {
		name       string
		cyphertext string
		passphrase string
		err        error
	}{
		{"null cypher", "", "supersecurekey", ErrNullCypherText},
		{"null passphrase", cyphertext, "", ErrNullPassphrase},
		{"not base64", "!!!", "supersecurekey", ErrInvalidCypherText},
		{
			"too short",
			base64.StdEncoding.EncodeToString([]byte("short")),
			"supersecurekey",
			ErrInvalidCypherText,
		},
		{"wrong passphrase", cyphertext, "wrongkey", ErrInvalidPassphrase},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := decrypt(tt.cyphertext, tt.passphrase)
			require.ErrorIs(t, err, tt.err)
		})
	}
}
