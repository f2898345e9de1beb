package hll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keilerkonzept/hll"
)

func TestHashFuncs_KnownValues(t *testing.T) {
	assert.Equal(t, uint32(0x02cc5d05), hll.XXHash32String(0)(""))
	assert.Equal(t, uint32(0), hll.Murmur3String(0)(""))
	assert.Equal(t, uint32(0x248bfa47), hll.Murmur3String(0)("hello"))
}

func TestHashFuncs_StringMatchesBytes(t *testing.T) {
	for _, s := range []string{"", "a", "hello", "the quick brown fox jumps over the lazy dog"} {
		assert.Equal(t, hll.XXHash32Bytes(9)([]byte(s)), hll.XXHash32String(9)(s), s)
		assert.Equal(t, hll.Murmur3Bytes(9)([]byte(s)), hll.Murmur3String(9)(s), s)
	}
}

func TestHashFuncs_Seeded(t *testing.T) {
	tests := []struct {
		name string
		hash func(seed uint32) hll.HashFunc[string]
	}{
		{"xxhash", hll.XXHash32String},
		{"murmur3", hll.Murmur3String},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.hash(1), tt.hash(2)
			assert.Equal(t, a("item"), tt.hash(1)("item"))
			assert.NotEqual(t, a("item"), b("item"))
		})
	}
}
