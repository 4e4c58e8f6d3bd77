// ABOUTME: bcrypt-backed Hasher and record-shape dispatch between hashers
// ABOUTME: Lets a database hold SHA-256 and bcrypt records side by side

package passwords

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt produces standard "$2a$..." bcrypt records.
type Bcrypt struct {
	// Cost is the bcrypt work factor; zero means bcrypt.DefaultCost.
	Cost int
}

var _ Hasher = Bcrypt{}

// Generate hashes password with bcrypt. Passwords longer than 72 bytes are rejected.
func (b Bcrypt) Generate(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the bcrypt record.
func (Bcrypt) Verify(password, record string) bool {
	return bcrypt.CompareHashAndPassword([]byte(record), []byte(password)) == nil
}

func isBcryptRecord(record string) bool {
	return strings.HasPrefix(record, "$2")
}

// ForRecord returns the Hasher able to verify record.
func ForRecord(record string) Hasher {
	if isBcryptRecord(record) {
		return Bcrypt{}
	}
	return SaltedSHA256{}
}

// Multi generates records with Primary and verifies records of either kind.
type Multi struct {
	Primary Hasher
}

var _ Hasher = Multi{}

// Generate delegates to Primary.
func (m Multi) Generate(password string) (string, error) {
	return m.Primary.Generate(password)
}

// Verify picks the hasher matching the record's shape.
func (m Multi) Verify(password, record string) bool {
	return ForRecord(record).Verify(password, record)
}

// New returns a Hasher that generates records of the named kind
// ("sha256" or "bcrypt") and verifies both kinds.
func New(kind string) (Hasher, error) {
	switch kind {
	case "", "sha256":
		return Multi{Primary: SaltedSHA256{}}, nil
	case "bcrypt":
		return Multi{Primary: Bcrypt{}}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q (valid: sha256, bcrypt)", kind)
	}
}
