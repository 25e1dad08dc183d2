// ABOUTME: Tests for generator application orchestration
// ABOUTME: Tests validation order, sink handling, echo, preview and audition
package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Resonate-Protocol/sinegen/pkg/audio"
	"github.com/Resonate-Protocol/sinegen/pkg/audio/output"
	"github.com/Resonate-Protocol/sinegen/pkg/sinetable"
)

func baseConfig(t *testing.T) Config {
	return Config{
		NumberOfSines: 2,
		PointsPerSine: 4,
		Resolution:    4,
		OutputPath:    filepath.Join(t.TempDir(), "sine.txt"),
	}
}

func TestNewGenerator(t *testing.T) {
	g := New(baseConfig(t), nil)
	if g == nil {
		t.Fatal("expected generator to be created")
	}
	if g.RunID() == "" {
		t.Error("expected run ID")
	}
	if New(baseConfig(t), nil).RunID() == g.RunID() {
		t.Error("run IDs should be unique")
	}
}

func TestRunWritesRawFile(t *testing.T) {
	config := baseConfig(t)
	if err := New(config, nil).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(config.OutputPath)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	expected := "0111\n1111\n0111\n0000\n0111\n1111\n0111\n0000\n"
	if string(data) != expected {
		t.Errorf("expected %q, got %q", expected, data)
	}
}

func TestRunVerboseEcho(t *testing.T) {
	config := baseConfig(t)
	config.Verbose = true
	config.Format = "vhdl"

	var echo bytes.Buffer
	if err := New(config, &echo).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(config.OutputPath)
	if echo.String() != string(data) {
		t.Errorf("echo should match file contents:\n%s\nvs\n%s", echo.String(), data)
	}
}

func TestRunQuietDoesNotEcho(t *testing.T) {
	var echo bytes.Buffer
	if err := New(baseConfig(t), &echo).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if echo.Len() != 0 {
		t.Errorf("expected no echo, got %q", echo.String())
	}
}

func TestRunValidationFailsBeforeOutput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"periods", func(c *Config) { c.NumberOfSines = 0 }, sinetable.ErrInvalidCount},
		{"points", func(c *Config) { c.PointsPerSine = 0 }, sinetable.ErrInvalidCount},
		{"resolution", func(c *Config) { c.Resolution = 65 }, sinetable.ErrInvalidResolution},
		{"format", func(c *Config) { c.Format = "verilog" }, sinetable.ErrUnknownDialect},
		{"name", func(c *Config) { c.Format = "vhdl"; c.ArrayName = "9lut" }, sinetable.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := baseConfig(t)
			tt.mutate(&config)

			err := New(config, nil).Run(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if _, statErr := os.Stat(config.OutputPath); !os.IsNotExist(statErr) {
				t.Error("output file should not be created on validation failure")
			}
		})
	}
}

func TestRunSinkUnavailable(t *testing.T) {
	config := baseConfig(t)
	config.OutputPath = filepath.Join(t.TempDir(), "no", "such", "dir", "sine.txt")

	err := New(config, nil).Run(context.Background())
	if !errors.Is(err, sinetable.ErrSinkUnavailable) {
		t.Errorf("expected ErrSinkUnavailable, got %v", err)
	}
}

func TestRunDiscardOutput(t *testing.T) {
	config := baseConfig(t)
	config.OutputPath = os.DevNull
	config.Verbose = true

	var echo bytes.Buffer
	if err := New(config, &echo).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if echo.Len() == 0 {
		t.Error("verbose echo should still be written when output is discarded")
	}
}

func TestRunPreview(t *testing.T) {
	config := baseConfig(t)
	config.Preview = true

	g := New(config, nil)
	var previewed sinetable.Params
	g.preview = func(p sinetable.Params) error {
		previewed = p
		return nil
	}

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if previewed.Len() != 8 {
		t.Errorf("expected preview of 8 lines, got %d", previewed.Len())
	}

	g.preview = func(sinetable.Params) error { return errors.New("no tty") }
	if err := g.Run(context.Background()); err == nil {
		t.Error("expected preview error to propagate")
	}
}

type fakeOutput struct {
	format  audio.Format
	volume  int
	written int
	closed  bool
}

func (f *fakeOutput) Open(format audio.Format) error {
	f.format = format
	return nil
}
func (f *fakeOutput) Write(samples []int16) error {
	f.written += len(samples)
	return nil
}
func (f *fakeOutput) Close() error {
	f.closed = true
	return nil
}

func TestRunAudition(t *testing.T) {
	config := baseConfig(t)
	config.PlayDuration = 50 * time.Millisecond
	config.PlayFrequency = 440
	config.Volume = 30

	g := New(config, nil)
	fake := &fakeOutput{}
	g.newOutput = func(volume int) output.Output {
		fake.volume = volume
		return fake
	}

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.format != audio.PCM16(audio.DefaultSampleRate, audio.DefaultChannels) {
		t.Errorf("unexpected format %+v", fake.format)
	}
	if fake.volume != 30 {
		t.Errorf("expected volume 30, got %d", fake.volume)
	}
	if fake.written != 2400*2 {
		t.Errorf("expected %d samples, got %d", 2400*2, fake.written)
	}
	if !fake.closed {
		t.Error("output should be closed")
	}
}

func TestRunAuditionBadFrequency(t *testing.T) {
	config := baseConfig(t)
	config.PlayDuration = time.Second
	config.PlayFrequency = 0

	g := New(config, nil)
	g.newOutput = func(int) output.Output { return &fakeOutput{} }

	if err := g.Run(context.Background()); err == nil {
		t.Error("expected error for zero frequency")
	}
}
