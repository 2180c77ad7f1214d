package auth

import (
	"crypto/sha256"
	"encoding/base64"
)

// Hash returns the base64-encoded SHA-256 digest of value. The output is
// deterministic and always 44 characters, so digests can be stored and
// compared as plain strings.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return base64.StdEncoding.EncodeToString(sum[:])
}
