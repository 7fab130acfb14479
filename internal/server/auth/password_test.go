package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fastArgon2 = Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

func TestIdentify(t *testing.T) {
	assert.Equal(t, AlgorithmBcrypt, Identify("$2a$10$abc"))
	assert.Equal(t, AlgorithmBcrypt, Identify("$2b$10$abc"))
	assert.Equal(t, AlgorithmBcrypt, Identify("$2y$10$abc"))
	assert.Equal(t, AlgorithmArgon2id, Identify("$argon2id$v=19$m=1,t=1,p=1$a$b"))
	assert.Equal(t, AlgorithmUnknown, Identify("plaintext"))
	assert.Equal(t, AlgorithmUnknown, Identify(""))
}

func TestHashers_RoundTrip(t *testing.T) {
	hashers := map[string]PasswordHasher{
		"bcrypt":   NewBcryptHasher(bcrypt.MinCost),
		"argon2id": NewArgon2Hasher(fastArgon2),
	}

	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			digest, err := h.Hash("p@ss1")
			require.NoError(t, err)

			assert.NotEqual(t, "p@ss1", digest)
			assert.NotContains(t, digest, "p@ss1")
			assert.True(t, h.Verify("p@ss1", digest))
			assert.False(t, h.Verify("wrong", digest))
			assert.False(t, h.Verify("p@ss", digest))
			assert.False(t, h.Verify("", digest))

			again, err := h.Hash("p@ss1")
			require.NoError(t, err)
			assert.NotEqual(t, digest, again, "salted")
		})
	}
}

func TestHashers_MalformedDigest(t *testing.T) {
	digests := []string{
		"",
		"plaintext",
		"$2a$",
		"$2a$10$short",
		"$argon2id$",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$a2V5",
		"$argon2id$v=19$m=8192,t=0,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$",
	}

	hashers := []PasswordHasher{
		NewBcryptHasher(bcrypt.MinCost),
		NewArgon2Hasher(fastArgon2),
		NewHasher(AlgorithmBcrypt, bcrypt.MinCost, fastArgon2),
	}

	for _, h := range hashers {
		for _, d := range digests {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify("anything", d), "digest %q", d)
			})
		}
	}
}

func TestBcryptHasher_TooLong(t *testing.T) {
	_, err := NewBcryptHasher(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(1).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
}

func TestBcryptHasher_NeedsRehash(t *testing.T) {
	low := NewBcryptHasher(bcrypt.MinCost)
	digest, err := low.Hash("pw")
	require.NoError(t, err)

	assert.False(t, low.NeedsRehash(digest))
	assert.True(t, NewBcryptHasher(bcrypt.MinCost+1).NeedsRehash(digest))
	assert.True(t, low.NeedsRehash("$argon2id$v=19$m=1,t=1,p=1$a$b"))
}

func TestArgon2Hasher_NeedsRehash(t *testing.T) {
	h := NewArgon2Hasher(fastArgon2)
	digest, err := h.Hash("pw")
	require.NoError(t, err)

	assert.False(t, h.NeedsRehash(digest))

	stronger := fastArgon2
	stronger.Time = 2
	assert.True(t, NewArgon2Hasher(stronger).NeedsRehash(digest))
	assert.True(t, h.NeedsRehash("garbage"))
}

func TestHasher_VerifiesLegacyDigests(t *testing.T) {
	legacy, err := NewBcryptHasher(bcrypt.MinCost).Hash("p@ss1")
	require.NoError(t, err)

	h := NewHasher(AlgorithmArgon2id, bcrypt.MinCost, fastArgon2)

	assert.True(t, h.Verify("p@ss1", legacy))
	assert.False(t, h.Verify("nope", legacy))
	assert.True(t, h.NeedsRehash(legacy))

	current, err := h.Hash("p@ss1")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmArgon2id, Identify(current))
	assert.True(t, h.Verify("p@ss1", current))
	assert.False(t, h.NeedsRehash(current))
}

func TestHasher_DefaultsToBcrypt(t *testing.T) {
	h := NewHasher("md5", bcrypt.MinCost, fastArgon2)

	digest, err := h.Hash("p@ss1")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmBcrypt, Identify(digest))
	assert.False(t, h.NeedsRehash(digest))
}
