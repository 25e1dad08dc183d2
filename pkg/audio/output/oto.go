// ABOUTME: Oto-based audio output implementation
// ABOUTME: Handles 16-bit PCM playback with software volume control using oto library
package output

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ebitengine/oto/v3"

	"github.com/Resonate-Protocol/sinegen/pkg/audio"
)

var (
	// ErrContextInUse is returned by Open once an oto context exists.
	// oto allows only one context per process, even after Close.
	ErrContextInUse = errors.New("output: oto allows only one audio context per process")

	// ErrUnsupportedFormat is returned for anything other than 16-bit PCM.
	ErrUnsupportedFormat = errors.New("output: unsupported format")
)

// Oto output implementation using oto library
type Oto struct {
	otoCtx     *oto.Context
	player     *oto.Player
	pipeReader *io.PipeReader
	pipeWriter *io.PipeWriter
	sampleRate int
	channels   int
	volume     int
	ready      bool
}

// NewOto creates a new Oto output
func NewOto() *Oto {
	return &Oto{
		volume: 100,
	}
}

// Open initializes the output device
func (o *Oto) Open(format audio.Format) error {
	if format.BitDepth != 16 {
		return fmt.Errorf("%w: %d-bit (oto output is 16-bit)", ErrUnsupportedFormat, format.BitDepth)
	}
	if o.otoCtx != nil {
		return fmt.Errorf("%w (created at %dHz %dch)", ErrContextInUse, o.sampleRate, o.channels)
	}

	sampleRate, channels := format.SampleRate, format.Channels
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx
	o.sampleRate = sampleRate
	o.channels = channels

	// Create pipe for continuous streaming
	o.pipeReader, o.pipeWriter = io.Pipe()

	// Create persistent player that reads from the pipe
	o.player = o.otoCtx.NewPlayer(o.pipeReader)
	o.player.Play()

	o.ready = true

	log.Printf("Audio output initialized: %dHz, %d channels", sampleRate, channels)

	return nil
}

// Write outputs audio samples (blocks until written)
func (o *Oto) Write(samples []int16) error {
	if !o.ready {
		return fmt.Errorf("output not initialized")
	}

	scaled := applyVolume(samples, o.volume)

	output := make([]byte, len(scaled)*2)
	for i, sample := range scaled {
		binary.LittleEndian.PutUint16(output[i*2:], uint16(sample))
	}

	// Write to pipe (which feeds the persistent player)
	if _, err := o.pipeWriter.Write(output); err != nil {
		return fmt.Errorf("pipe write failed: %w", err)
	}

	return nil
}

// Close releases output resources
func (o *Oto) Close() error {
	if o.pipeWriter != nil {
		o.pipeWriter.Close()
		o.pipeWriter = nil
	}
	if o.player != nil {
		o.player.Close()
		o.player = nil
	}
	if o.pipeReader != nil {
		o.pipeReader.Close()
		o.pipeReader = nil
	}
	if o.otoCtx != nil {
		o.otoCtx.Suspend()
		o.ready = false
	}
	return nil
}

// IsOpen reports whether Open has succeeded and Close has not been called
func (o *Oto) IsOpen() bool {
	return o.ready
}

// SetVolume sets the volume (0-100)
func (o *Oto) SetVolume(volume int) {
	o.volume = clampVolume(volume)
}

// Volume returns current volume
func (o *Oto) Volume() int {
	return o.volume
}

func clampVolume(volume int) int {
	if volume < 0 {
		return 0
	}
	if volume > 100 {
		return 100
	}
	return volume
}

// applyVolume scales samples by volume percent
func applyVolume(samples []int16, volume int) []int16 {
	if volume >= 100 {
		return samples
	}

	result := make([]int16, len(samples))
	for i, sample := range samples {
		result[i] = int16(int32(sample) * int32(volume) / 100)
	}
	return result
}
