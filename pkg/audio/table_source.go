// ABOUTME: Looping PCM source backed by a quantized sine table
// ABOUTME: Walks the table with a phase accumulator at a fixed frequency
package audio

import (
	"fmt"
	"sync"
)

// TableSource plays one period of a table repeatedly.
type TableSource struct {
	pcm        []int16
	phase      float64 // table index, fractional
	step       float64 // table entries per output frame
	sampleRate int
	channels   int
	mu         sync.Mutex
}

// NewTableSource creates a source that cycles through values frequency
// times per second.
func NewTableSource(values []uint64, bitWidth int, frequency float64, sampleRate, channels int) (*TableSource, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("table is empty")
	}
	if frequency <= 0 {
		return nil, fmt.Errorf("frequency must be positive, got %v", frequency)
	}
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}
	if channels == 0 {
		channels = DefaultChannels
	}

	return &TableSource{
		pcm:        TableToPCM(values, bitWidth),
		step:       frequency * float64(len(values)) / float64(sampleRate),
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// Read fills samples with interleaved frames. The table is sampled at the
// nearest lower index, without interpolation, so quantization stays audible.
func (s *TableSource) Read(samples []int16) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	frames := len(samples) / s.channels
	size := float64(len(s.pcm))

	for i := 0; i < frames; i++ {
		value := s.pcm[int(s.phase)]
		for ch := 0; ch < s.channels; ch++ {
			samples[i*s.channels+ch] = value
		}

		s.phase += s.step
		for s.phase >= size {
			s.phase -= size
		}
	}

	return frames * s.channels, nil
}

// Format returns the 16-bit PCM format of the samples Read produces
func (s *TableSource) Format() Format {
	return PCM16(s.sampleRate, s.channels)
}

func (s *TableSource) SampleRate() int { return s.sampleRate }
func (s *TableSource) Channels() int   { return s.channels }
func (s *TableSource) Close() error    { return nil }
