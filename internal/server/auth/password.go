package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Algorithm identifies the scheme a digest was produced with.
type Algorithm string

const (
	AlgorithmUnknown  Algorithm = ""
	AlgorithmBcrypt   Algorithm = "bcrypt"
	AlgorithmArgon2id Algorithm = "argon2id"
)

var ErrPasswordTooLong = errors.New("password: maximum length is 72 bytes")

// PasswordHasher hashes and verifies passwords. Verify never fails loudly:
// a mismatch, an unknown scheme and a malformed digest all yield false.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
	NeedsRehash(digest string) bool
}

// Identify returns the algorithm tag of digest.
func Identify(digest string) Algorithm {
	switch {
	case strings.HasPrefix(digest, "$2a$"),
		strings.HasPrefix(digest, "$2b$"),
		strings.HasPrefix(digest, "$2y$"):
		return AlgorithmBcrypt
	case strings.HasPrefix(digest, "$argon2id$"):
		return AlgorithmArgon2id
	default:
		return AlgorithmUnknown
	}
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt hasher. Costs outside bcrypt's range fall
// back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

func (h *BcryptHasher) NeedsRehash(digest string) bool {
	if Identify(digest) != AlgorithmBcrypt {
		return true
	}
	cost, err := bcrypt.Cost([]byte(digest))
	return err != nil || cost != h.cost
}

// Argon2Params are the argon2id tuning parameters.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultArgon2Params follow the OWASP baseline for argon2id.
var DefaultArgon2Params = Argon2Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}

// Argon2Hasher implements PasswordHasher using argon2id with digests encoded
// as $argon2id$v=19$m=MEMORY,t=TIME,p=THREADS$SALT$KEY.
type Argon2Hasher struct {
	params Argon2Params
}

// NewArgon2Hasher returns an argon2id hasher that produces digests with p.
func NewArgon2Hasher(p Argon2Params) *Argon2Hasher {
	return &Argon2Hasher{params: p}
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("password: generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *Argon2Hasher) Verify(password, digest string) bool {
	p, salt, key, err := decodeArgon2(digest)
	if err != nil {
		return false
	}
	got := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(got, key) == 1
}

func (h *Argon2Hasher) NeedsRehash(digest string) bool {
	p, _, key, err := decodeArgon2(digest)
	if err != nil {
		return true
	}
	return p.Time != h.params.Time || p.Memory != h.params.Memory ||
		p.Threads != h.params.Threads || uint32(len(key)) != h.params.KeyLen
}

func decodeArgon2(digest string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != string(AlgorithmArgon2id) {
		return p, nil, nil, errors.New("password: invalid argon2id digest")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return p, nil, nil, errors.New("password: unsupported argon2 version")
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, fmt.Errorf("password: parse argon2id params: %w", err)
	}
	if p.Time == 0 || p.Threads == 0 {
		return p, nil, nil, errors.New("password: invalid argon2id params")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("password: decode salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, errors.New("password: decode key")
	}

	return p, salt, key, nil
}

// Hasher hashes with the current algorithm and verifies digests of every
// registered algorithm, so existing users keep logging in after the
// default scheme changes.
type Hasher struct {
	current Algorithm
	byAlg   map[Algorithm]PasswordHasher
}

// NewHasher builds a Hasher. current selects the algorithm for new digests;
// anything but argon2id means bcrypt.
func NewHasher(current Algorithm, bcryptCost int, argon Argon2Params) *Hasher {
	if current != AlgorithmArgon2id {
		current = AlgorithmBcrypt
	}
	return &Hasher{
		current: current,
		byAlg: map[Algorithm]PasswordHasher{
			AlgorithmBcrypt:   NewBcryptHasher(bcryptCost),
			AlgorithmArgon2id: NewArgon2Hasher(argon),
		},
	}
}

func (h *Hasher) Hash(password string) (string, error) {
	return h.byAlg[h.current].Hash(password)
}

func (h *Hasher) Verify(password, digest string) bool {
	impl, ok := h.byAlg[Identify(digest)]
	if !ok {
		return false
	}
	return impl.Verify(password, digest)
}

func (h *Hasher) NeedsRehash(digest string) bool {
	if Identify(digest) != h.current {
		return true
	}
	return h.byAlg[h.current].NeedsRehash(digest)
}
