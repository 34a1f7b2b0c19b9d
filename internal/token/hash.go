package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Hasher turns a raw token into its stored form and checks candidates
// against it. Implementations must be safe for concurrent use.
type Hasher interface {
	Hash(raw string) (string, error)
	Verify(raw, encoded string) bool
}

// Argon2Params tunes the argon2id cost. Memory is in KiB.
type Argon2Params struct {
	MemoryCost  uint32
	TimeCost    uint32
	Parallelism uint8
}

// Argon2Hasher hashes management-plane credentials with argon2id in
// PHC string format. Slow on purpose; verification results are cached
// upstream.
type Argon2Hasher struct {
	params Argon2Params
}

// NewArgon2Hasher returns a hasher with the given cost parameters.
func NewArgon2Hasher(params Argon2Params) *Argon2Hasher {
	return &Argon2Hasher{params: params}
}

const argon2KeyLen = 32

// Hash encodes the raw token as $argon2id$v=19$m=...,t=...,p=...$salt$hash.
func (h *Argon2Hasher) Hash(raw string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	key := argon2.IDKey([]byte(raw), salt,
		h.params.TimeCost, h.params.MemoryCost, h.params.Parallelism, argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemoryCost, h.params.TimeCost, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify recomputes the hash with the parameters embedded in encoded.
// Cost changes in config therefore never invalidate existing keys.
func (h *Argon2Hasher) Verify(raw, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}
	var memory, time uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &parallelism); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(raw), salt, time, memory, parallelism, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}

// SHA256Hasher hashes SDK keys with a single unsalted SHA-256 round.
// SDK tokens carry 24 random bytes, so dictionary attacks against the
// stored digest are pointless and verification stays cheap enough for
// the read path.
type SHA256Hasher struct{}

// Hash encodes the raw token as $sha256$hex.
func (SHA256Hasher) Hash(raw string) (string, error) {
	sum := sha256.Sum256([]byte(raw))
	return "$sha256$" + hex.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest and compares in constant time.
func (SHA256Hasher) Verify(raw, encoded string) bool {
	rest, ok := strings.CutPrefix(encoded, "$sha256$")
	if !ok {
		return false
	}
	want, err := hex.DecodeString(rest)
	if err != nil {
		return false
	}
	sum := sha256.Sum256([]byte(raw))
	return subtle.ConstantTimeCompare(sum[:], want) == 1
}
