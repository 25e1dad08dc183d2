// ABOUTME: Ordered sample sequences over one or more periods
// ABOUTME: Lazy, restartable iterators of quantized values and bit strings
package sinetable

import "iter"

// Values yields (line index, quantized value) for every sample of every
// period, in output order. Angles come from the sample index directly, so
// each period is bit-identical to the first.
//
// p is assumed to be valid; see Validate.
func (p Params) Values() iter.Seq2[int, uint64] {
	return func(yield func(int, uint64) bool) {
		n := 0
		for period := 0; period < p.Periods; period++ {
			for i := 0; i < p.SamplesPerPeriod; i++ {
				if !yield(n, Quantize(Angle(i, p.SamplesPerPeriod), p.BitWidth)) {
					return
				}
				n++
			}
		}
	}
}

// Lines yields the encoded bit string of every sample in output order.
// Invalid params yield nothing; Write and Document report the error.
func (p Params) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if p.Validate() != nil {
			return
		}
		for _, v := range p.Values() {
			line, err := Encode(v, p.BitWidth)
			if err != nil {
				return
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Period returns the quantized values of a single period.
func (p Params) Period() []uint64 {
	if p.SamplesPerPeriod < 1 {
		return nil
	}
	values := make([]uint64, p.SamplesPerPeriod)
	for i := range values {
		values[i] = Quantize(Angle(i, p.SamplesPerPeriod), p.BitWidth)
	}
	return values
}

// At returns the quantized value of output line n, 0 <= n < Len().
func (p Params) At(n int) uint64 {
	return Quantize(Angle(n%p.SamplesPerPeriod, p.SamplesPerPeriod), p.BitWidth)
}
