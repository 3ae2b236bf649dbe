package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"slices"
	"strings"

	"github.com/Pomi44/OIB/internal/services/search"
	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/sha3"
)

const DefaultAlgorithm = "sha3-256"

// Algorithm is a named digest. New must return an independent hasher on every call,
// workers never share one.
type Algorithm struct {
	Name string
	New  func() hash.Hash
}

var registry = map[string]Algorithm{
	"md5":      {Name: "md5", New: md5.New},
	"sha1":     {Name: "sha1", New: sha1.New},
	"sha256":   {Name: "sha256", New: sha256.New},
	"sha512":   {Name: "sha512", New: sha512.New},
	"sha3-256": {Name: "sha3-256", New: func() hash.Hash { return sha3.New256() }},
	"sha3-512": {Name: "sha3-512", New: func() hash.Hash { return sha3.New512() }},
	"blake3":   {Name: "blake3", New: func() hash.Hash { return blake3.New() }},
	// not cryptographic, handy for benchmarks
	"xxh3": {Name: "xxh3", New: func() hash.Hash { return xxh3.New() }},
}

func Lookup(name string) (Algorithm, error) {
	alg, ok := registry[strings.ToLower(name)]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: unknown digest algorithm %q (known: %s)",
			search.ErrConfiguration, name, strings.Join(Names(), ", "))
	}
	return alg, nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Size returns the digest length in bytes.
func (a Algorithm) Size() int {
	return len(a.New().Sum(nil))
}

func (a Algorithm) Sum(data []byte) []byte {
	h := a.New()
	h.Write(data)
	return h.Sum(nil)
}

func (a Algorithm) HexSum(s string) string {
	return hex.EncodeToString(a.Sum([]byte(s)))
}

// ParseTarget decodes a hex target digest and checks its length against the algorithm.
func ParseTarget(a Algorithm, target string) ([]byte, error) {
	decoded, err := hex.DecodeString(strings.TrimSpace(target))
	if err != nil {
		return nil, fmt.Errorf("%w: target digest is not hex: %v", search.ErrConfiguration, err)
	}

	if err := CheckTarget(a, decoded); err != nil {
		return nil, err
	}

	return decoded, nil
}

func CheckTarget(a Algorithm, target []byte) error {
	if size := a.Size(); len(target) != size {
		return fmt.Errorf("%w: %s digest is %d bytes, target has %d",
			search.ErrConfiguration, a.Name, size, len(target))
	}
	return nil
}

// FromFunc adapts a plain digest(bytes) -> bytes function to an Algorithm.
func FromFunc(name string, fn func([]byte) []byte) Algorithm {
	return Algorithm{
		Name: name,
		New: func() hash.Hash {
			return &funcHash{fn: fn}
		},
	}
}

type funcHash struct {
	fn  func([]byte) []byte
	buf []byte
}

func (f *funcHash) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

func (f *funcHash) Sum(b []byte) []byte {
	return append(b, f.fn(f.buf)...)
}

func (f *funcHash) Reset() {
	f.buf = f.buf[:0]
}

func (f *funcHash) Size() int {
	return len(f.fn(nil))
}

func (f *funcHash) BlockSize() int {
	return 1
}
