package utils

import (
	"crypto/rand"   // Random salt generation
	"crypto/sha512" // Digest for PBKDF2
	"crypto/subtle" // Constant-time comparison
	"encoding/hex"  // Hex encoding of salt and digest

	"golang.org/x/crypto/pbkdf2" // Key derivation
)

const (
	saltBytes        = 16   // 128-bit salt
	pbkdf2Iterations = 1000 // PBKDF2 iteration count
	pbkdf2KeyLen     = 64   // Digest length in bytes
)

// HashPassword derives a hex encoded digest for password.
// A fresh random salt is generated when salt is empty.
func HashPassword(password, salt string) (string, string, error) {
	if salt == "" {
		buf := make([]byte, saltBytes)
		if _, err := rand.Read(buf); err != nil {
			return "", "", err
		}
		salt = hex.EncodeToString(buf)
	}
	digest := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha512.New)
	return salt, hex.EncodeToString(digest), nil
}

// VerifyPassword recomputes the digest for password and salt and compares it to hash
func VerifyPassword(password, salt, hash string) bool {
	if salt == "" {
		return false // An empty salt would be replaced by a random one
	}
	_, computed, err := HashPassword(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
