package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Passwords are stored encrypted with the server key so that login can
// decrypt and compare the original value. AES-256-GCM with a per-record
// salt and nonce; output layout: base64(salt | nonce | ciphertext).

const (
	saltSize      = 16
	keySize       = 32
	kdfIterations = 10000
)

var ErrDecryptFailed = errors.New("failed to decrypt value")

func deriveKey(secret string, salt []byte) []byte {
	return pbkdf2.Key([]byte(secret), salt, kdfIterations, keySize, sha256.New)
}

// EncryptString encrypts plaintext with a key derived from secret.
func EncryptString(plaintext, secret string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	block, err := aes.NewCipher(deriveKey(secret, salt))
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	out := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, sealed...)
	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptString reverses EncryptString. A wrong key or corrupted value
// yields ErrDecryptFailed, never a partial plaintext.
func DecryptString(encoded, secret string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrDecryptFailed
	}
	if len(raw) < saltSize {
		return "", ErrDecryptFailed
	}

	salt, rest := raw[:saltSize], raw[saltSize:]

	block, err := aes.NewCipher(deriveKey(secret, salt))
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	if len(rest) < gcm.NonceSize() {
		return "", ErrDecryptFailed
	}

	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptFailed
	}
	return string(plaintext), nil
}
