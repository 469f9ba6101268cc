package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrCiphertextInvalid = errors.New("повреждённый шифротекст токена")

// TokenCipher : симметричное шифрование токенов Strava (NaCl secretbox)
type TokenCipher struct {
	key [32]byte
}

// NewTokenCipher : ключ выводится из секрета через SHA-256
func NewTokenCipher(secret string) (*TokenCipher, error) {
	if secret == "" {
		return nil, errors.New("ключ шифрования токенов пуст")
	}
	return &TokenCipher{key: sha256.Sum256([]byte(secret))}, nil
}

// Seal : nonce || box, в base64
func (c *TokenCipher) Seal(plaintext string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("ошибка генерации nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &c.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *TokenCipher) Open(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCiphertextInvalid, err)
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrCiphertextInvalid
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plaintext, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return "", ErrCiphertextInvalid
	}
	return string(plaintext), nil
}
