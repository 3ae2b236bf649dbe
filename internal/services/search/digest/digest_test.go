package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/Pomi44/OIB/internal/services/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "md5", want: "900150983cd24fb0d6963f7d28e17f72"},
		{name: "sha1", want: "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{name: "sha256", want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{name: "sha3-256", want: "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{name: "SHA3-256", want: "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alg, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, alg.HexSum("abc"))
		})
	}
}

func TestLookup_Sizes(t *testing.T) {
	sizes := map[string]int{
		"md5":      16,
		"sha1":     20,
		"sha256":   32,
		"sha512":   64,
		"sha3-256": 32,
		"sha3-512": 64,
		"blake3":   32,
	}

	for name, size := range sizes {
		alg, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, size, alg.Size(), name)
	}

	alg, err := Lookup("xxh3")
	require.NoError(t, err)
	assert.Positive(t, alg.Size())
	assert.Equal(t, alg.Sum([]byte("card")), alg.Sum([]byte("card")))
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("crc32")
	assert.ErrorIs(t, err, search.ErrConfiguration)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, DefaultAlgorithm)
	assert.IsIncreasing(t, names)
}

func TestParseTarget(t *testing.T) {
	alg, err := Lookup("sha256")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		want := alg.Sum([]byte("4000000000421111"))
		got, err := ParseTarget(alg, "  "+hex.EncodeToString(want)+"\n")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not hex", func(t *testing.T) {
		_, err := ParseTarget(alg, "zz")
		assert.ErrorIs(t, err, search.ErrConfiguration)
	})

	t.Run("wrong length for algorithm", func(t *testing.T) {
		md5Alg, err := Lookup("md5")
		require.NoError(t, err)

		_, err = ParseTarget(alg, md5Alg.HexSum("x"))
		assert.ErrorIs(t, err, search.ErrConfiguration)
	})
}

func TestFromFunc(t *testing.T) {
	alg := FromFunc("stdsha256", func(b []byte) []byte {
		sum := sha256.Sum256(b)
		return sum[:]
	})

	simd, err := Lookup("sha256")
	require.NoError(t, err)

	assert.Equal(t, 32, alg.Size())
	assert.Equal(t, simd.HexSum("123450001236789"), alg.HexSum("123450001236789"))

	h := alg.New()
	h.Write([]byte("first"))
	h.Reset()
	h.Write([]byte("abc"))
	assert.Equal(t, simd.Sum([]byte("abc")), h.Sum(nil))
}

func TestMatcher(t *testing.T) {
	alg, err := Lookup(DefaultAlgorithm)
	require.NoError(t, err)

	target := alg.Sum([]byte("4000001234561111"))
	m := NewMatcher(alg, target)

	assert.False(t, m.Match([]byte("4000001234551111")))
	assert.True(t, m.Match([]byte("4000001234561111")))
	assert.False(t, m.Match([]byte("4000001234571111")))
	assert.True(t, m.Match([]byte("4000001234561111")))

	assert.True(t, Matches(alg, "4000001234561111", target))
	assert.False(t, Matches(alg, "4000001234561112", target))
}
