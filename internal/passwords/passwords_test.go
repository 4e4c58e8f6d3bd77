// ABOUTME: Tests for salted password hashing and verification
// ABOUTME: Covers round-trips, salt uniqueness, malformed records and hasher selection

package passwords

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_RecordFormat(t *testing.T) {
	record := Generate("hunter2")

	parts := strings.Split(record, ":")
	require.Len(t, parts, 2)

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)

	hash, err := base64.StdEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Len(t, hash, sha256.Size)

	// hash = SHA-256(salt || password)
	want := sha256.Sum256(append(salt, []byte("hunter2")...))
	assert.Equal(t, want[:], hash)
}

func TestVerify_RoundTrip(t *testing.T) {
	for _, p := range []string{"x", "hunter2", "correct horse battery staple", "pässwörd", ""} {
		assert.True(t, Verify(p, Generate(p)), "password %q should verify", p)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	record := Generate("x")
	assert.False(t, Verify("y", record))
	assert.False(t, Verify("X", record))
	assert.False(t, Verify("x ", record))
}

func TestGenerate_DistinctSalts(t *testing.T) {
	a := Generate("same")
	b := Generate("same")

	assert.NotEqual(t, a, b, "two records for one password should differ")
	assert.True(t, Verify("same", a))
	assert.True(t, Verify("same", b))
}

func TestVerify_MalformedRecords(t *testing.T) {
	valid := Generate("pw")
	parts := strings.Split(valid, ":")

	tests := []struct {
		name   string
		record string
	}{
		{"empty", ""},
		{"no separator", parts[0] + parts[1]},
		{"three parts", valid + ":extra"},
		{"empty salt", ":" + parts[1]},
		{"empty hash", parts[0] + ":"},
		{"bad salt encoding", "!!!:" + parts[1]},
		{"bad hash encoding", parts[0] + ":***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, Verify("pw", tt.record))
			})
		})
	}
}

func TestParseRecord_MalformedError(t *testing.T) {
	_, _, err := parseRecord("nope")
	assert.ErrorIs(t, err, errMalformedRecord)

	_, _, err = parseRecord("!!!:abc")
	assert.ErrorIs(t, err, errMalformedRecord)
}

func TestBcrypt_RoundTrip(t *testing.T) {
	h := Bcrypt{Cost: 4}

	record, err := h.Generate("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(record, "$2"))

	assert.True(t, h.Verify("secret", record))
	assert.False(t, h.Verify("other", record))
	assert.False(t, h.Verify("secret", "not-a-bcrypt-hash"))
}

func TestBcrypt_TooLong(t *testing.T) {
	_, err := Bcrypt{Cost: 4}.Generate(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestMulti_VerifiesBothKinds(t *testing.T) {
	shaRecord := Generate("pw")
	bcryptRecord, err := Bcrypt{Cost: 4}.Generate("pw")
	require.NoError(t, err)

	for _, kind := range []string{"sha256", "bcrypt"} {
		h, err := New(kind)
		require.NoError(t, err)

		assert.True(t, h.Verify("pw", shaRecord), "%s hasher should verify sha256 records", kind)
		assert.True(t, h.Verify("pw", bcryptRecord), "%s hasher should verify bcrypt records", kind)
		assert.False(t, h.Verify("nope", shaRecord))
		assert.False(t, h.Verify("nope", bcryptRecord))
	}
}

func TestNew(t *testing.T) {
	h, err := New("")
	require.NoError(t, err)
	record, err := h.Generate("pw")
	require.NoError(t, err)
	assert.Contains(t, record, ":", "default hasher should produce salt:hash records")

	h, err = New("bcrypt")
	require.NoError(t, err)
	assert.Equal(t, Multi{Primary: Bcrypt{}}, h)

	_, err = New("md5")
	assert.Error(t, err)
}

func TestForRecord(t *testing.T) {
	assert.Equal(t, Bcrypt{}, ForRecord("$2a$10$abcdefghijklmnopqrstuv"))
	assert.Equal(t, SaltedSHA256{}, ForRecord("c2FsdA==:aGFzaA=="))
	assert.Equal(t, SaltedSHA256{}, ForRecord(""))
}
