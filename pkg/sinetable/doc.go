// ABOUTME: Sine lookup table package for digital logic designers
// ABOUTME: Quantizes sine samples into fixed-width unsigned bit strings
// Package sinetable computes quantized sine lookup tables and renders them
// as text: one bit string per line, or a VHDL array literal.
//
// A table is described by Params:
//   - Periods: how many full 0..2π cycles to emit
//   - SamplesPerPeriod: how many samples per cycle
//   - BitWidth: bits per sample (1 to 64)
//
// Each sample is sin(θ) mapped from [-1, 1] onto [0, 2^BitWidth-1] and
// truncated toward zero.
//
// Example:
//
//	params, err := sinetable.Validate(1, 256, 12)
//	if err != nil {
//	    return err
//	}
//	err = sinetable.Write(w, params, sinetable.ArrayLiteral, sinetable.FrameOptions{})
package sinetable
