package utils

import (
	"crypto/rand"  // Cryptographically secure randomness
	"encoding/hex" // Hex encoding
)

const tokenBytes = 32 // 256-bit tokens

// GenerateToken returns a random opaque bearer token
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
