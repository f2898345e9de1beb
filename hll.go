// Package hll implements a HyperLogLog distinct-count sketch, as described in "HyperLogLog: the analysis of a near-optimal cardinality estimation algorithm" [1]
//
// [1] http://algo.inria.fr/flajolet/Publications/FlFuGaMe07.pdf
package hll

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/keilerkonzept/hll/internal/sizeof"
)

const (
	MinPrecision = 4
	MaxPrecision = 16

	hashBits = 32
)

// ErrInvalidConfiguration is returned by [New] when the sketch cannot be built from the given parameters.
var ErrInvalidConfiguration = errors.New("hll: invalid configuration")

// Sketch is a HyperLogLog sketch over elements of type T.
// It is not safe for concurrent use; callers with several writers must serialize calls to Add.
type Sketch[T any] struct {
	precision uint8
	alpha     float64
	registers []uint8 // max rank seen per index, never decreases
	hash      HashFunc[T]
}

// New returns an empty sketch with 2^precision registers that hashes its elements with the given function.
//
// The precision must be in [MinPrecision, MaxPrecision] and hash must be non-nil; otherwise the returned error wraps [ErrInvalidConfiguration].
func New[T any](precision uint8, hash HashFunc[T]) (*Sketch[T], error) {
	if precision < MinPrecision || precision > MaxPrecision {
		return nil, fmt.Errorf("%w: precision %d not in [%d, %d]", ErrInvalidConfiguration, precision, MinPrecision, MaxPrecision)
	}
	if hash == nil {
		return nil, fmt.Errorf("%w: nil hash function", ErrInvalidConfiguration)
	}

	m := 1 << precision
	return &Sketch[T]{
		precision: precision,
		alpha:     alpha(m),
		registers: make([]uint8, m),
		hash:      hash,
	}, nil
}

// Precision returns the number of hash bits used to select a register.
func (me *Sketch[T]) Precision() uint8 { return me.precision }

// RegisterCount returns the number of registers (2^precision).
func (me *Sketch[T]) RegisterCount() int { return len(me.registers) }

// SizeBytes returns the current size of the sketch in bytes.
func (me *Sketch[T]) SizeBytes() int {
	return sizeofSketchStruct + len(me.registers)*sizeof.UInt8
}

// Add hashes the item and records it in the sketch.
func (me *Sketch[T]) Add(item T) {
	me.AddHash(me.hash(item))
}

// AddHash records an already hashed value.
//
// The top `precision` bits of x select the register, the remaining bits determine the rank.
func (me *Sketch[T]) AddHash(x uint32) {
	index := x >> (hashBits - me.precision)
	// all-zero residual gives rank hashBits+1
	rank := uint8(bits.LeadingZeros32(x<<me.precision)) + 1
	me.registers[index] = max(me.registers[index], rank)
}
