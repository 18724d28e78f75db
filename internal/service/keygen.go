package service

import (
	"crypto/rand"
	"encoding/hex"
	"io"
)

// keyPrefix marks every issued token as an API key of this service.
const keyPrefix = "sk-"

// keyRandomBytes is the entropy of the random suffix: 16 bytes → 32 hex
// characters → 128 bits.
const keyRandomBytes = 16

// GenerateAPIKey mints an opaque key string of the form
// "sk-" + 32 lowercase hex characters, read from the OS CSPRNG.
// Returns an error only if the random read fails.
func GenerateAPIKey() (string, error) {
	suffix := make([]byte, keyRandomBytes)
	if _, err := io.ReadFull(rand.Reader, suffix); err != nil {
		return "", err
	}

	return keyPrefix + hex.EncodeToString(suffix), nil
}
