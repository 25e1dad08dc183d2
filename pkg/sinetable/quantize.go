// ABOUTME: Sample quantization and bit-string encoding
// ABOUTME: Maps sin(θ) onto [0, 2^bits-1] by truncation and formats it MSB first
package sinetable

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Angle returns the angle of sample index within one period:
// index * (2π / samplesPerPeriod).
func Angle(index, samplesPerPeriod int) float64 {
	return float64(index) * (2 * math.Pi / float64(samplesPerPeriod))
}

// Quantize maps sin(theta) from [-1, 1] onto [0, 2^bitWidth-1].
//
// The scaled value is truncated toward zero, so 127.5 becomes 127.
// A bitWidth outside [1, 64] yields 0.
func Quantize(theta float64, bitWidth int) uint64 {
	if bitWidth < 1 || bitWidth > MaxBitWidth {
		return 0
	}

	// top is odd, so (s+1)/2 * top == half + (0.5 + s*top/2) with half
	// exact in integers. Only the offset from the midpoint goes through
	// float64, which keeps θ=0 at half for every width up to 64.
	top := maxValue(bitWidth)
	half := top >> 1
	offset := math.Floor(0.5 + math.Sin(theta)*float64(top)/2)

	if math.IsNaN(offset) {
		return 0
	}
	if offset < 0 {
		down := uint64(-offset)
		if down >= half {
			return 0
		}
		return half - down
	}
	up := uint64(offset)
	if up >= top-half {
		return top
	}
	return half + up
}

// Encode formats value as an unsigned binary string of exactly bitWidth
// characters, most significant bit first.
func Encode(value uint64, bitWidth int) (string, error) {
	if err := checkBitWidth(bitWidth); err != nil {
		return "", err
	}
	if value > maxValue(bitWidth) {
		return "", fmt.Errorf("%w: %d does not fit in %d bits", ErrEncodingOverflow, value, bitWidth)
	}
	return formatBits(value, bitWidth), nil
}

func formatBits(value uint64, bitWidth int) string {
	s := strconv.FormatUint(value, 2)
	if len(s) < bitWidth {
		s = strings.Repeat("0", bitWidth-len(s)) + s
	}
	return s
}

func maxValue(bitWidth int) uint64 {
	if bitWidth >= MaxBitWidth {
		return math.MaxUint64
	}
	return 1<<uint(bitWidth) - 1
}
