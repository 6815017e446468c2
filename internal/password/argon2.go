// Package password hashes user passwords with argon2id and encodes them in
// the PHC string format so every hash carries its own salt and parameters.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

const algorithm = "argon2id"

// costCeiling bounds the memory and time a stored hash may ask for, as a
// multiple of the configured cost.
const costCeiling = 16

// Params are the argon2id cost parameters.
type Params struct {
	Time    uint32
	MemKiB  uint32
	Par     uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultParams returns t=1, m=64MiB, p=4 with a 32 byte key and a 16 byte salt.
func DefaultParams() Params {
	return Params{Time: 1, MemKiB: 64 * 1024, Par: 4, KeyLen: 32, SaltLen: 16}
}

// Argon2 implements model.PasswordHasher.
type Argon2 struct {
	params Params
	rand   io.Reader
}

var _ model.PasswordHasher = (*Argon2)(nil)

// NewArgon2 creates a hasher. Zero key or salt lengths fall back to the defaults.
func NewArgon2(params Params) *Argon2 {
	def := DefaultParams()
	if params.KeyLen == 0 {
		params.KeyLen = def.KeyLen
	}
	if params.SaltLen == 0 {
		params.SaltLen = def.SaltLen
	}
	return &Argon2{params: params, rand: rand.Reader}
}

// Hash derives a key from plaintext with a fresh random salt.
func (a *Argon2) Hash(plaintext string) (string, error) {
	if a.params.Time == 0 || a.params.MemKiB == 0 || a.params.Par == 0 {
		return "", fmt.Errorf("invalid argon2 params t=%d m=%d p=%d", a.params.Time, a.params.MemKiB, a.params.Par)
	}

	salt := make([]byte, a.params.SaltLen)
	if _, err := io.ReadFull(a.rand, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, a.params.Time, a.params.MemKiB, a.params.Par, a.params.KeyLen)

	return encode(a.params, salt, key), nil
}

// Verify re-derives the key with the parameters stored in hash and compares in constant time.
func (a *Argon2) Verify(hash, plaintext string) (bool, error) {
	p, salt, key, err := decode(hash)
	if err != nil {
		return false, err
	}
	if err := a.checkCost(p); err != nil {
		return false, err
	}

	derived := argon2.IDKey([]byte(plaintext), salt, p.Time, p.MemKiB, p.Par, uint32(len(key)))

	return subtle.ConstantTimeCompare(derived, key) == 1, nil
}

func (a *Argon2) checkCost(p Params) error {
	def := DefaultParams()
	memKiB, time := uint64(a.params.MemKiB), uint64(a.params.Time)
	if memKiB == 0 {
		memKiB = uint64(def.MemKiB)
	}
	if time == 0 {
		time = uint64(def.Time)
	}
	if uint64(p.MemKiB) > memKiB*costCeiling || uint64(p.Time) > time*costCeiling {
		return fmt.Errorf("%w: cost m=%d,t=%d exceeds limit", model.ErrCorruptCredential, p.MemKiB, p.Time)
	}
	return nil
}

func encode(p Params, salt, key []byte) string {
	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithm, argon2.Version, p.MemKiB, p.Time, p.Par,
		b64.EncodeToString(salt), b64.EncodeToString(key))
}

// decode parses "$argon2id$v=19$m=..,t=..,p=..$salt$key".
func decode(hash string) (Params, []byte, []byte, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return Params{}, nil, nil, fmt.Errorf("%w: unexpected segment count", model.ErrCorruptCredential)
	}
	if parts[1] != algorithm {
		return Params{}, nil, nil, fmt.Errorf("%w: unsupported algorithm %q", model.ErrCorruptCredential, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: bad version: %v", model.ErrCorruptCredential, err)
	}
	if version != argon2.Version {
		return Params{}, nil, nil, fmt.Errorf("%w: unsupported version %d", model.ErrCorruptCredential, version)
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemKiB, &p.Time, &p.Par); err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: bad params: %v", model.ErrCorruptCredential, err)
	}
	if p.Time == 0 || p.MemKiB == 0 || p.Par == 0 {
		return Params{}, nil, nil, fmt.Errorf("%w: zero params", model.ErrCorruptCredential)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return Params{}, nil, nil, fmt.Errorf("%w: bad salt", model.ErrCorruptCredential)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Params{}, nil, nil, fmt.Errorf("%w: bad key", model.ErrCorruptCredential)
	}

	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(key))
	return p, salt, key, nil
}
