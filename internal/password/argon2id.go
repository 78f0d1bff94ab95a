// Package password hashes and verifies user passwords with argon2id.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dtroode/chirpy-server/internal/model"
)

const (
	saltLen = 16
	keyLen  = 32

	// Upper bounds accepted when verifying a stored hash.
	maxTime    = 16
	maxMemKiB  = 1 << 20
	maxKeyLen  = 1024
	maxSaltLen = 1024
)

// Hasher produces and verifies PHC-encoded argon2id hashes.
type Hasher struct {
	time   uint32
	memKiB uint32
	par    uint8
}

var _ model.PasswordHasher = (*Hasher)(nil)

// NewHasher creates a Hasher with fixed cost parameters.
func NewHasher(time, memKiB uint32, par uint8) *Hasher {
	return &Hasher{time: time, memKiB: memKiB, par: par}
}

// Hash returns $argon2id$v=19$m=<KiB>,t=<iter>,p=<par>$<salt>$<key>.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memKiB, h.par, keyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memKiB,
		h.time,
		h.par,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches encodedHash.
// Malformed or unsupported hashes never match.
func (h *Hasher) Verify(password, encodedHash string) bool {
	p, ok := decode(encodedHash)
	if !ok {
		return false
	}

	computed := argon2.IDKey([]byte(password), p.salt, p.time, p.memKiB, p.par, uint32(len(p.key)))

	return subtle.ConstantTimeCompare(computed, p.key) == 1
}

type params struct {
	time   uint32
	memKiB uint32
	par    uint8
	salt   []byte
	key    []byte
}

func decode(encoded string) (params, bool) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params{}, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params{}, false
	}

	var memKiB, time, par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memKiB, &time, &par); err != nil {
		return params{}, false
	}
	if time == 0 || time > maxTime || par == 0 || par > 255 || memKiB < 8*par || memKiB > maxMemKiB {
		return params{}, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 || len(salt) > maxSaltLen {
		return params{}, false
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > maxKeyLen {
		return params{}, false
	}

	return params{time: time, memKiB: memKiB, par: uint8(par), salt: salt, key: key}, true
}
