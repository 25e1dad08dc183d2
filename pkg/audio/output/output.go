// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for audio playback backends
package output

import "github.com/Resonate-Protocol/sinegen/pkg/audio"

// Output represents an audio output device
type Output interface {
	// Open initializes the output device
	Open(format audio.Format) error

	// Write outputs 16-bit samples (blocks until written)
	Write(samples []int16) error

	// Close releases output resources
	Close() error
}
