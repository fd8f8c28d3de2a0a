// Package password provides one-way credential hashing for interactive
// login. bcrypt embeds the salt and cost factor in the hash string, so
// verification needs no side channel.
package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor. 10 rounds keeps hashing under ~100ms on
// current hardware while staying expensive enough for offline attacks.
const Cost = 10

// Hash produces a salted bcrypt hash of the plaintext.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash. The comparison is
// constant-time; a malformed hash yields false, never an error.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
