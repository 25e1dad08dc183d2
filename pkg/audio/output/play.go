// ABOUTME: Playback loop feeding a source into an output
// ABOUTME: Streams fixed-size chunks until the duration elapses or ctx ends
package output

import (
	"context"
	"fmt"
	"time"

	"github.com/Resonate-Protocol/sinegen/pkg/audio"
)

// Source provides interleaved 16-bit PCM
type Source interface {
	Read(samples []int16) (int, error)
	Format() audio.Format
}

// chunkFrames is the number of frames written per Write call (~20ms at 48kHz).
const chunkFrames = 960

// Play opens out, streams src for duration, and closes out. It returns
// early with ctx.Err() when ctx is cancelled.
func Play(ctx context.Context, out Output, src Source, duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", duration)
	}

	format := src.Format()
	if err := out.Open(format); err != nil {
		return err
	}
	defer out.Close()

	remaining := int64(duration.Seconds() * float64(format.SampleRate))
	buf := make([]int16, chunkFrames*format.Channels)

	for remaining > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frames := int64(chunkFrames)
		if remaining < frames {
			frames = remaining
		}

		n, err := src.Read(buf[:frames*int64(format.Channels)])
		if err != nil {
			return fmt.Errorf("source read failed: %w", err)
		}
		if err := out.Write(buf[:n]); err != nil {
			return err
		}

		remaining -= frames
	}

	return nil
}
