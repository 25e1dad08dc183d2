// ABOUTME: Error values returned by sine table generation
// ABOUTME: Sentinels plus ParamError describing rejected parameters
package sinetable

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCount is returned when the period or sample count is below 1.
	ErrInvalidCount = errors.New("sinetable: invalid count")

	// ErrInvalidResolution is returned when the bit width is outside [1, 64].
	ErrInvalidResolution = errors.New("sinetable: invalid resolution")

	// ErrSinkUnavailable is returned when the output cannot be opened or written.
	ErrSinkUnavailable = errors.New("sinetable: output unavailable")

	// ErrEncodingOverflow is returned when a value does not fit the bit width.
	ErrEncodingOverflow = errors.New("sinetable: value exceeds bit width")

	// ErrInvalidName is returned for an array identifier that is not valid VHDL.
	ErrInvalidName = errors.New("sinetable: invalid array name")

	// ErrUnknownDialect is returned by ParseDialect for unrecognized names.
	ErrUnknownDialect = errors.New("sinetable: unknown output format")
)

// ParamError describes a rejected generation parameter.
type ParamError struct {
	Param string // name of the parameter as shown to users
	Value int
	Valid string // human readable valid range
	Err   error  // ErrInvalidCount or ErrInvalidResolution
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("Invalid Value for %s: %d (valid values are %s)", e.Param, e.Value, e.Valid)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}
