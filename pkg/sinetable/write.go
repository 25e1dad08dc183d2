// ABOUTME: Renders a complete sine table document to a writer
// ABOUTME: Validates, frames and writes one line at a time
package sinetable

import (
	"fmt"
	"io"
)

// Write validates p and writes the framed table to w, one line per
// element terminated by "\n". Nothing is written if validation fails.
func Write(w io.Writer, p Params, d Dialect, opts FrameOptions) error {
	if err := p.Validate(); err != nil {
		return err
	}

	doc, err := Frame(p.Lines(), p, d, opts)
	if err != nil {
		return err
	}

	for line := range doc {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
		}
	}
	return nil
}

// Document returns the framed table as a slice of lines.
func Document(p Params, d Dialect, opts FrameOptions) ([]string, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	doc, err := Frame(p.Lines(), p, d, opts)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, p.Len()+3)
	for line := range doc {
		lines = append(lines, line)
	}
	return lines, nil
}
