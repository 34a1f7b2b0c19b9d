// Package token mints and verifies the bearer credentials of the
// management and SDK planes. A raw token embeds the key id in its tail
// so verification is a primary-key lookup, never a table scan over
// hashes.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// AdminPrefix marks workspace admin API keys.
	AdminPrefix = "rpa"
	// SDKPrefix marks environment-scoped SDK keys.
	SDKPrefix = "rp"

	randLen = 24 // random bytes ahead of the embedded id
	idLen   = 16 // uuid bytes at the tail
)

// ErrMalformed is returned when a raw token cannot be decoded.
var ErrMalformed = errors.New("malformed token")

// Generate mints a raw token: prefix, underscore, then the hex of 24
// random bytes followed by the 16-byte key id.
func Generate(prefix string, id uuid.UUID) (string, error) {
	buf := make([]byte, randLen+idLen)
	if _, err := rand.Read(buf[:randLen]); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	copy(buf[randLen:], id[:])
	return prefix + "_" + hex.EncodeToString(buf), nil
}

// Parse splits a raw token into its prefix and the embedded key id.
func Parse(raw string) (string, uuid.UUID, error) {
	prefix, payload, ok := strings.Cut(raw, "_")
	if !ok || prefix == "" {
		return "", uuid.Nil, ErrMalformed
	}
	buf, err := hex.DecodeString(payload)
	if err != nil || len(buf) != randLen+idLen {
		return "", uuid.Nil, ErrMalformed
	}
	id, err := uuid.FromBytes(buf[randLen:])
	if err != nil {
		return "", uuid.Nil, ErrMalformed
	}
	return prefix, id, nil
}

// DisplayParts derives the fragments stored for key listings: the
// prefix with the first six hex characters, and the last four hex
// characters. Enough for users to tell keys apart, useless to an
// attacker.
func DisplayParts(raw string) (prefix, suffix string) {
	head, payload, ok := strings.Cut(raw, "_")
	if !ok || len(payload) < 10 {
		return raw, ""
	}
	return head + "_" + payload[:6], payload[len(payload)-4:]
}
