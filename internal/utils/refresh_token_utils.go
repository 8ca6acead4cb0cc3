package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken generates a SHA256 hash of an opaque token. Refresh tokens are stored
// hashed so a database leak does not leak usable tokens.
func HashToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CompareTokenHash compares a raw token with its stored SHA256 hash. The `token`
// parameter must be the raw token string, not a hash.
func CompareTokenHash(token string, storedHash string) bool {
	return HashToken(token) == storedHash
}
