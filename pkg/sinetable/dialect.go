// ABOUTME: Output dialects for rendered sine tables
// ABOUTME: Raw bit lines or a VHDL constant array literal
package sinetable

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
)

// Dialect selects how sample lines are framed.
type Dialect int

const (
	// RawBits emits one bit string per line with no framing.
	RawBits Dialect = iota
	// ArrayLiteral emits a VHDL array type, constant and quoted elements.
	ArrayLiteral
)

// DefaultArrayName is the identifier used when FrameOptions.Name is empty.
const DefaultArrayName = "sine_table"

func (d Dialect) String() string {
	switch d {
	case RawBits:
		return "raw"
	case ArrayLiteral:
		return "vhdl"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// ParseDialect maps a format name to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "raw", "bits":
		return RawBits, nil
	case "vhdl", "array":
		return ArrayLiteral, nil
	}
	return RawBits, fmt.Errorf("%w: %q (use raw or vhdl)", ErrUnknownDialect, name)
}

// FrameOptions configures ArrayLiteral framing.
type FrameOptions struct {
	// Name is the array identifier. The type is named <name>_t and the
	// constant <NAME>.
	Name string
}

// VHDL basic identifier: starts with a letter, no double or trailing underscore.
var identifierRe = regexp.MustCompile(`^[A-Za-z](_?[A-Za-z0-9])*$`)

func (o FrameOptions) arrayName() (string, error) {
	if o.Name == "" {
		return DefaultArrayName, nil
	}
	if !identifierRe.MatchString(o.Name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, o.Name)
	}
	return o.Name, nil
}

// Frame wraps sample lines in the framing of dialect d. p supplies the
// table length and element width for the ArrayLiteral header.
func Frame(lines iter.Seq[string], p Params, d Dialect, opts FrameOptions) (iter.Seq[string], error) {
	switch d {
	case RawBits:
		return lines, nil
	case ArrayLiteral:
		name, err := opts.arrayName()
		if err != nil {
			return nil, err
		}
		return arrayLiteral(lines, p, name), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownDialect, d)
}

func arrayLiteral(lines iter.Seq[string], p Params, name string) iter.Seq[string] {
	typeName := strings.ToLower(name) + "_t"
	constName := strings.ToUpper(name)

	return func(yield func(string) bool) {
		header := fmt.Sprintf("type %s is array (0 to %d) of std_logic_vector(%d downto 0);",
			typeName, p.Len()-1, p.BitWidth-1)
		if !yield(header) {
			return
		}
		if !yield(fmt.Sprintf("constant %s : %s := (", constName, typeName)) {
			return
		}

		// Hold one line back so the final element goes out without a comma.
		var pending string
		have := false
		for line := range lines {
			if have && !yield(`    "`+pending+`",`) {
				return
			}
			pending, have = line, true
		}
		if have && !yield(`    "`+pending+`"`) {
			return
		}

		yield(");")
	}
}
