// ABOUTME: Audio helpers for auditioning quantized sine tables
// ABOUTME: Converts table values to PCM and plays them as a looping tone
// Package audio turns a quantized lookup table into audible PCM.
//
// Table values are unsigned offset binary in [0, 2^bits-1]. They are
// converted to signed 16-bit PCM and read back through a phase
// accumulator, the way an NCO walks its lookup table:
//   - TableToPCM: offset binary to signed 16-bit samples
//   - TableSource: looping reader at a chosen frequency
//
// Example:
//
//	src, err := audio.NewTableSource(params.Period(), params.BitWidth, 440, 48000, 2)
//	n, err := src.Read(buf)
package audio
