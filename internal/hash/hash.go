// Package hash provides the transform applied to every password before it is
// persisted. Stored passwords are always the output of Password, never the
// raw input.
package hash

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const iterations = 4096

var salt = []byte("shelfd.password.v1")

// Password derives the stored representation of a plaintext password.
//
// The derivation is deliberately deterministic: a fixed salt and iteration
// count, so the same plaintext always maps to the same stored value. That
// property makes it unsuitable for real credential storage; a production
// deployment must swap this for a per-user-salted adaptive algorithm such as
// bcrypt.
func Password(plaintext string) string {
	return hex.EncodeToString(pbkdf2.Key([]byte(plaintext), salt, iterations, 32, sha256.New))
}
