package hll

import "slices"

// Registers returns a copy of the register array.
func (me *Sketch[T]) Registers() []uint8 { return slices.Clone(me.registers) }

// SetRegisters overwrites the register array; len(regs) must equal RegisterCount.
func (me *Sketch[T]) SetRegisters(regs []uint8) { copy(me.registers, regs) }

func (me *Sketch[T]) Alpha() float64 { return me.alpha }

var (
	Correct             = correct
	LargeRangeThreshold = float64(largeRangeThreshold)
)
