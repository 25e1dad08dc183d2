// ABOUTME: Output destination for generated tables
// ABOUTME: Buffered file or discard target with optional console echo
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Resonate-Protocol/sinegen/pkg/sinetable"
)

// Sink is an append-only, line-oriented destination. It must be closed to
// flush buffered output.
type Sink struct {
	path   string
	file   *os.File
	buf    *bufio.Writer
	writer io.Writer
}

// Open acquires the destination at path. An empty path or os.DevNull
// discards output. When echo is non-nil every write is mirrored to it.
func Open(path string, echo io.Writer) (*Sink, error) {
	s := &Sink{path: path}

	var dst io.Writer = io.Discard
	if path != "" && path != os.DevNull {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return nil, fmt.Errorf("%w: error opening file at path %q: %w", sinetable.ErrSinkUnavailable, path, err)
		}
		s.file = f
		s.buf = bufio.NewWriter(f)
		dst = s.buf
	}

	if echo != nil {
		dst = io.MultiWriter(dst, echo)
	}
	s.writer = dst

	return s, nil
}

// Path returns the path the sink was opened with.
func (s *Sink) Path() string {
	return s.path
}

// Discarding reports whether output is thrown away.
func (s *Sink) Discarding() bool {
	return s.file == nil
}

func (s *Sink) Write(p []byte) (int, error) {
	return s.writer.Write(p)
}

// Close flushes buffered output and releases the file. It is safe to call
// more than once.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}

	flushErr := s.buf.Flush()
	closeErr := s.file.Close()
	s.file = nil

	if flushErr != nil {
		return fmt.Errorf("%w: flush %s: %w", sinetable.ErrSinkUnavailable, s.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: close %s: %w", sinetable.ErrSinkUnavailable, s.path, closeErr)
	}
	return nil
}
