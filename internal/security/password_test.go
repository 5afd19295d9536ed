package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testParams() HashParams {
	// Small factors keep the test fast; verification reads them back from
	// the encoded hash either way.
	return HashParams{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("sup3rsecret", testParams())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(hash), "$argon2id$"))

	ok, err := VerifyPassword("sup3rsecret", hash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyPasswordRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse", testParams())
	require.NoError(t, err)

	ok, err := VerifyPassword("battery-staple", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashPasswordSaltsEachHash(t *testing.T) {
	first, err := HashPassword("same-password", testParams())
	require.NoError(t, err)
	second, err := HashPassword("same-password", testParams())
	require.NoError(t, err)

	require.NotEqual(t, string(first), string(second))
}

func TestVerifyPasswordHonorsEncodedParams(t *testing.T) {
	params := testParams()
	params.Time = 2
	params.Memory = 16 * 1024

	hash, err := HashPassword("tuned", params)
	require.NoError(t, err)
	require.Contains(t, string(hash), "m=16384,t=2,p=1")

	ok, err := VerifyPassword("tuned", hash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	for _, bad := range []string{
		"",
		"plainhash",
		"$bcrypt$v=19$m=8,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8,t=1,p=1$not-base64!$aGFzaA",
	} {
		_, err := VerifyPassword("whatever", []byte(bad))
		require.Error(t, err, "hash %q", bad)
	}
}
