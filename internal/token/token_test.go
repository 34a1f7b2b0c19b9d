package token

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	id, err := uuid.NewV7()
	require.NoError(t, err)

	raw, err := Generate(AdminPrefix, id)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(raw, "rpa_"))
	// 24 random + 16 id bytes, hex-encoded.
	assert.Len(t, raw, len("rpa_")+80)

	prefix, gotID, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, AdminPrefix, prefix)
	assert.Equal(t, id, gotID)
}

func TestGenerate_UniquePerCall(t *testing.T) {
	id, err := uuid.NewV7()
	require.NoError(t, err)

	a, err := Generate(SDKPrefix, id)
	require.NoError(t, err)
	b, err := Generate(SDKPrefix, id)
	require.NoError(t, err)

	// Same embedded id, different random head.
	assert.NotEqual(t, a, b)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no separator", "rpa12345"},
		{"empty prefix", "_" + strings.Repeat("ab", 40)},
		{"not hex", "rp_" + strings.Repeat("zz", 40)},
		{"too short", "rp_" + strings.Repeat("ab", 10)},
		{"too long", "rp_" + strings.Repeat("ab", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.raw)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestDisplayParts(t *testing.T) {
	id, err := uuid.NewV7()
	require.NoError(t, err)
	raw, err := Generate(AdminPrefix, id)
	require.NoError(t, err)

	prefix, suffix := DisplayParts(raw)

	assert.True(t, strings.HasPrefix(raw, prefix))
	assert.True(t, strings.HasSuffix(raw, suffix))
	assert.Len(t, prefix, len("rpa_")+6)
	assert.Len(t, suffix, 4)
	// The display fragments must not reconstruct the token.
	assert.Less(t, len(prefix)+len(suffix), len(raw)/2)
}

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	h := NewArgon2Hasher(Argon2Params{MemoryCost: 8 * 1024, TimeCost: 1, Parallelism: 1})

	encoded, err := h.Hash("rpa_secret")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	assert.True(t, h.Verify("rpa_secret", encoded))
	assert.False(t, h.Verify("rpa_wrong", encoded))
}

func TestArgon2Hasher_SaltedHashesDiffer(t *testing.T) {
	h := NewArgon2Hasher(Argon2Params{MemoryCost: 8 * 1024, TimeCost: 1, Parallelism: 1})

	a, err := h.Hash("same-input")
	require.NoError(t, err)
	b, err := h.Hash("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify("same-input", a))
	assert.True(t, h.Verify("same-input", b))
}

func TestArgon2Hasher_VerifyUsesEmbeddedParams(t *testing.T) {
	slow := NewArgon2Hasher(Argon2Params{MemoryCost: 16 * 1024, TimeCost: 2, Parallelism: 2})
	encoded, err := slow.Hash("token")
	require.NoError(t, err)

	// A hasher configured differently still verifies old hashes.
	fast := NewArgon2Hasher(Argon2Params{MemoryCost: 8 * 1024, TimeCost: 1, Parallelism: 1})
	assert.True(t, fast.Verify("token", encoded))
}

func TestArgon2Hasher_RejectsForeignEncodings(t *testing.T) {
	h := NewArgon2Hasher(Argon2Params{MemoryCost: 8 * 1024, TimeCost: 1, Parallelism: 1})

	assert.False(t, h.Verify("x", ""))
	assert.False(t, h.Verify("x", "$sha256$abcd"))
	assert.False(t, h.Verify("x", "$argon2id$v=19$m=8192,t=1,p=1$notb64!!$nope"))
}

func TestSHA256Hasher_RoundTrip(t *testing.T) {
	var h SHA256Hasher

	encoded, err := h.Hash("rp_reader")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "$sha256$"))

	assert.True(t, h.Verify("rp_reader", encoded))
	assert.False(t, h.Verify("rp_other", encoded))
	assert.False(t, h.Verify("rp_reader", "$argon2id$whatever"))
}

func TestSHA256Hasher_Deterministic(t *testing.T) {
	var h SHA256Hasher

	a, err := h.Hash("rp_reader")
	require.NoError(t, err)
	b, err := h.Hash("rp_reader")
	require.NoError(t, err)

	// Unsalted: lookup by digest would be possible if ever needed.
	assert.Equal(t, a, b)
}
