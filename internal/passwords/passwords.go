// ABOUTME: Salted password hashing and verification behind a swappable Hasher
// ABOUTME: Records are opaque strings; callers never parse them

package passwords

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// SaltSize is the number of random bytes mixed into every SHA-256 record.
const SaltSize = 16

// separator joins the encoded salt and hash in a SHA-256 record.
const separator = ":"

// errMalformedRecord is never returned to callers; Verify maps it to false.
var errMalformedRecord = errors.New("malformed credential record")

// Hasher turns plaintext passwords into storable records and checks them later.
// Implementations must never log or persist the plaintext.
type Hasher interface {
	// Generate returns a new record for password.
	Generate(password string) (string, error)
	// Verify reports whether password matches record. Malformed records
	// and internal failures report false.
	Verify(password, record string) bool
}

// SaltedSHA256 produces "<salt_b64>:<hash_b64>" records where
// hash = SHA-256(salt || password).
type SaltedSHA256 struct{}

var _ Hasher = SaltedSHA256{}

// Generate returns a fresh record using a random salt.
// It panics if the system random source is unavailable.
func (SaltedSHA256) Generate(password string) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		panic(fmt.Sprintf("passwords: reading random salt: %v", err))
	}

	hash := sum(salt, password)
	return base64.StdEncoding.EncodeToString(salt) + separator + base64.StdEncoding.EncodeToString(hash), nil
}

// Verify recomputes the hash with the record's salt and compares in constant time.
func (SaltedSHA256) Verify(password, record string) bool {
	salt, want, err := parseRecord(record)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(sum(salt, password), want) == 1
}

func sum(salt []byte, password string) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))
	return h.Sum(nil)
}

func parseRecord(record string) (salt, hash []byte, err error) {
	parts := strings.Split(record, separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, nil, errMalformedRecord
	}

	salt, err = base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: salt: %v", errMalformedRecord, err)
	}
	hash, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: hash: %v", errMalformedRecord, err)
	}
	return salt, hash, nil
}

// Generate returns a SHA-256 record for password.
func Generate(password string) string {
	record, _ := SaltedSHA256{}.Generate(password)
	return record
}

// Verify checks password against any record kind this package produces.
func Verify(password, record string) bool {
	return ForRecord(record).Verify(password, record)
}
