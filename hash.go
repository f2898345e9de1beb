package hll

import (
	"github.com/OneOfOne/xxhash"
	"github.com/spaolacci/murmur3"

	"github.com/keilerkonzept/hll/internal/unsafeutil"
)

// HashFunc maps an element to a 32-bit hash.
// It should be deterministic and close to uniform over the elements being counted.
type HashFunc[T any] func(item T) uint32

// XXHash32String returns a seeded 32-bit xxHash over strings.
func XXHash32String(seed uint32) HashFunc[string] {
	return func(item string) uint32 { return xxhash.ChecksumString32S(item, seed) }
}

// XXHash32Bytes returns a seeded 32-bit xxHash over byte slices.
func XXHash32Bytes(seed uint32) HashFunc[[]byte] {
	return func(item []byte) uint32 { return xxhash.Checksum32S(item, seed) }
}

// Murmur3String returns a seeded MurmurHash3 (x86, 32-bit) over strings.
func Murmur3String(seed uint32) HashFunc[string] {
	return func(item string) uint32 { return murmur3.Sum32WithSeed(unsafeutil.Bytes(item), seed) }
}

// Murmur3Bytes returns a seeded MurmurHash3 (x86, 32-bit) over byte slices.
func Murmur3Bytes(seed uint32) HashFunc[[]byte] {
	return func(item []byte) uint32 { return murmur3.Sum32WithSeed(item, seed) }
}
