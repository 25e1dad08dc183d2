// ABOUTME: Audio type definitions and sample conversion
// ABOUTME: Maps offset-binary table values onto signed 16-bit PCM
package audio

const (
	DefaultSampleRate = 48000
	DefaultChannels   = 2

	// 16-bit PCM range
	MaxInt16 = 32767
	MinInt16 = -32768
)

// Format describes a PCM stream
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// PCM16 returns the 16-bit format produced by TableSource
func PCM16(sampleRate, channels int) Format {
	return Format{
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   16,
	}
}

// SampleToInt16 converts an unsigned table value of the given bit width to
// signed 16-bit PCM. Zero maps to MinInt16 and 2^bits-1 to MaxInt16.
// Widths of 16 and above keep the top 16 bits; narrower widths are scaled
// up so the table peak reaches full scale.
func SampleToInt16(value uint64, bitWidth int) int16 {
	var v16 uint64
	if bitWidth >= 16 {
		v16 = value >> uint(bitWidth-16)
	} else {
		top := uint64(1)<<uint(bitWidth) - 1
		v16 = value * 0xFFFF / top
	}
	return int16(int32(v16&0xFFFF) - 32768)
}

// TableToPCM converts every table value to signed 16-bit PCM.
func TableToPCM(values []uint64, bitWidth int) []int16 {
	pcm := make([]int16, len(values))
	for i, v := range values {
		pcm[i] = SampleToInt16(v, bitWidth)
	}
	return pcm
}
