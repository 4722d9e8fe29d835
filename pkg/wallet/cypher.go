package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/crypto/scrypt"
)

const saltLen = 32

// 2^20 = 1048576 recommended cost for key-stretching, see
// https://godoc.org/golang.org/x/crypto/scrypt.
var scryptN = 1 << 20

// encrypt encrypts (with AES-256-GCM) a plaintext with a key derived from
// the passphrase. The result is base64 of nonce|ciphertext|salt.
func encrypt(plainText, passphrase string) (string, error) {
	if len(plainText) <= 0 {
		return "", ErrNullPlainText
	}
	if len(passphrase) <= 0 {
		return "", ErrNullPassphrase
	}

	key, salt, err := deriveKey([]byte(passphrase), nil)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return "", err
	}

	cypherText := gcm.Seal(nonce, nonce, []byte(plainText), nil)
	cypherText = append(cypherText, salt...)

	return base64.StdEncoding.EncodeToString(cypherText), nil
}

// decrypt reverts encrypt. A wrong passphrase results in
// ErrInvalidPassphrase.
func decrypt(cypherText, passphrase string) (string, error) {
	if len(cypherText) <= 0 {
		return "", ErrNullCypherText
	}
	if len(passphrase) <= 0 {
		return "", ErrNullPassphrase
	}
	data, err := base64.StdEncoding.DecodeString(cypherText)
	if err != nil {
		return "", ErrInvalidCypherText
	}
	if len(data) <= saltLen {
		return "", ErrInvalidCypherText
	}
	salt, data := data[len(data)-saltLen:], data[:len(data)-saltLen]

	key, _, err := deriveKey([]byte(passphrase), salt)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	if len(data) < gcm.NonceSize() {
		return "", ErrInvalidCypherText
	}
	nonce, text := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plainText, err := gcm.Open(nil, nonce, text, nil)
	if err != nil {
		return "", ErrInvalidPassphrase
	}
	return string(plainText), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	blockCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(blockCipher)
}

// deriveKey derives a 32 byte key from a passphrase. A random salt is
// generated if none is given.
func deriveKey(passphrase, salt []byte) ([]byte, []byte, error) {
	if salt == nil {
		salt = make([]byte, saltLen)
		if _, err := rand.Read(salt); err != nil {
			return nil, nil, err
		}
	}
	key, err := scrypt.Key(passphrase, salt, scryptN, 8, 1, 32)
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}
