// ABOUTME: Generation parameters and their validation
// ABOUTME: Rejects bad counts and resolutions before any output is produced
package sinetable

import "fmt"

// MaxBitWidth is the widest supported sample representation.
const MaxBitWidth = 64

// Params describes one sine table.
type Params struct {
	Periods          int
	SamplesPerPeriod int
	BitWidth         int
}

// Validate checks the raw parameters and returns them as Params.
// Checks run in order: periods, samples per period, bit width.
func Validate(periods, samplesPerPeriod, bitWidth int) (Params, error) {
	if periods < 1 {
		return Params{}, &ParamError{Param: "numberOfSines", Value: periods, Valid: "1 or more", Err: ErrInvalidCount}
	}
	if samplesPerPeriod < 1 {
		return Params{}, &ParamError{Param: "pointsPerSine", Value: samplesPerPeriod, Valid: "1 or more", Err: ErrInvalidCount}
	}
	if err := checkBitWidth(bitWidth); err != nil {
		return Params{}, err
	}

	return Params{
		Periods:          periods,
		SamplesPerPeriod: samplesPerPeriod,
		BitWidth:         bitWidth,
	}, nil
}

// Validate re-checks p, for callers that build Params directly.
func (p Params) Validate() error {
	_, err := Validate(p.Periods, p.SamplesPerPeriod, p.BitWidth)
	return err
}

// Len returns the number of sample lines the table contains.
func (p Params) Len() int {
	return p.Periods * p.SamplesPerPeriod
}

// MaxValue returns the largest quantized value, 2^BitWidth - 1.
func (p Params) MaxValue() uint64 {
	return maxValue(p.BitWidth)
}

func (p Params) String() string {
	return fmt.Sprintf("%d x %d samples @ %d-bit", p.Periods, p.SamplesPerPeriod, p.BitWidth)
}

func checkBitWidth(bitWidth int) error {
	if bitWidth < 1 || bitWidth > MaxBitWidth {
		return &ParamError{Param: "resolution", Value: bitWidth, Valid: "1 to 64", Err: ErrInvalidResolution}
	}
	return nil
}
