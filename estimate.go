package hll

import "math"

const (
	alpha16 = 0.673
	alpha32 = 0.697
	alpha64 = 0.709

	two32 = 1 << 32

	// raw estimates up to smallRangeFactor*m are corrected with linear counting
	smallRangeFactor = 2.5
	// raw estimates above largeRangeThreshold are corrected for 32-bit hash collisions
	largeRangeThreshold = two32 / 30.0
)

// alpha returns the bias constant for m registers.
func alpha(m int) float64 {
	switch {
	case m < 32:
		return alpha16
	case m < 64:
		return alpha32
	case m < 128:
		return alpha64
	}
	return 0.7213 / (1 + 1.079/float64(m))
}

// Cardinality returns the estimated number of distinct elements added so far.
func (me *Sketch[T]) Cardinality() float64 {
	raw, zeros := me.rawEstimate()
	return correct(raw, len(me.registers), zeros)
}

// RawEstimate returns the uncorrected estimate alpha*m^2 / Σ 2^-register.
func (me *Sketch[T]) RawEstimate() float64 {
	raw, _ := me.rawEstimate()
	return raw
}

// rawEstimate returns the raw estimate together with the number of zero registers.
func (me *Sketch[T]) rawEstimate() (raw float64, zeros int) {
	var inverseSum float64
	for _, r := range me.registers {
		// Exp2 instead of 1<<r: r reaches 33 when the residual bits are all zero.
		inverseSum += math.Exp2(-float64(r))
		if r == 0 {
			zeros++
		}
	}
	m := float64(len(me.registers))
	return me.alpha * m * m / inverseSum, zeros
}

// correct applies the small- or large-range correction to a raw estimate.
func correct(raw float64, m, zeros int) float64 {
	fm := float64(m)
	switch {
	case raw <= smallRangeFactor*fm:
		if zeros == 0 {
			return raw
		}
		return linearCounting(fm, float64(zeros))
	case raw <= largeRangeThreshold:
		return raw
	case raw >= two32:
		// the collision correction diverges here
		return math.Inf(1)
	}
	return -two32 * math.Log(1-raw/two32)
}

func linearCounting(m, zeros float64) float64 {
	return m * math.Log(m/zeros)
}
