// ABOUTME: Audio output package for auditioning tables
// ABOUTME: Provides Output interface, Oto implementation and Play loop
// Package output provides audio playback for quantized tables.
//
// Example:
//
//	out := output.NewOto()
//	err := output.Play(ctx, out, src, 2*time.Second)
package output
