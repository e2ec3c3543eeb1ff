// Package hashing implements salted password hashing with PBKDF2.
//
// A digest is the concatenation of a printable salt and the hex-encoded
// derived key, always 200 characters long, so it can be stored in a plain
// string column and recognized on the way back in.
package hashing

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltPrefix marks a string as a digest produced by this package.
	saltPrefix = "__hash__"

	// saltLen is the full printable salt length: the prefix plus a
	// hex-encoded SHA-256 of random bytes (8 + 64).
	saltLen = 72

	// digestLen is saltLen plus the hex-encoded 64-byte derived key.
	digestLen = 200

	iterations = 100_000
	keyLen     = 64
)

// Hash derives a salted digest from a plaintext password. Each call consumes
// fresh system randomness, so two hashes of the same password differ.
func Hash(password string) (string, error) {
	raw := make([]byte, 60)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	sum := sha256.Sum256(raw)
	salt := saltPrefix + hex.EncodeToString(sum[:])

	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLen, sha512.New)
	return salt + hex.EncodeToString(key), nil
}

// IsHashed reports whether a value is already a digest produced by Hash.
// User writes call this to avoid hashing an already-hashed password twice.
func IsHashed(value string) bool {
	return strings.HasPrefix(value, saltPrefix) && len(value) == digestLen
}

// Verify checks a candidate password against a stored digest. The comparison
// of derived keys is constant time with respect to the candidate.
func Verify(storedDigest, candidate string) bool {
	if !IsHashed(storedDigest) {
		return false
	}

	salt := storedDigest[:saltLen]
	stored := storedDigest[saltLen:]

	key := pbkdf2.Key([]byte(candidate), []byte(salt), iterations, keyLen, sha512.New)
	derived := hex.EncodeToString(key)

	return subtle.ConstantTimeCompare([]byte(derived), []byte(stored)) == 1
}
