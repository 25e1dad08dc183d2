// ABOUTME: Table generator application orchestration
// ABOUTME: Coordinates validation, output sink, preview TUI and audition
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Resonate-Protocol/sinegen/internal/sink"
	"github.com/Resonate-Protocol/sinegen/internal/ui"
	"github.com/Resonate-Protocol/sinegen/pkg/audio"
	"github.com/Resonate-Protocol/sinegen/pkg/audio/output"
	"github.com/Resonate-Protocol/sinegen/pkg/sinetable"
)

// Config holds generator configuration
type Config struct {
	NumberOfSines int
	PointsPerSine int
	Resolution    int
	Format        string
	ArrayName     string
	OutputPath    string
	Verbose       bool

	Preview       bool
	PlayDuration  time.Duration
	PlayFrequency float64
	Volume        int
}

// Generator runs one table generation
type Generator struct {
	config Config
	runID  string
	echo   io.Writer

	preview   func(sinetable.Params) error
	newOutput func(volume int) output.Output
}

// New creates a new generator. echo receives every line when Verbose is set.
func New(config Config, echo io.Writer) *Generator {
	return &Generator{
		config:  config,
		runID:   uuid.New().String(),
		echo:    echo,
		preview: ui.Run,
		newOutput: func(volume int) output.Output {
			o := output.NewOto()
			o.SetVolume(volume)
			return o
		},
	}
}

// RunID identifies this generation in logs
func (g *Generator) RunID() string {
	return g.runID
}

// Params validates the configured counts and resolution
func (g *Generator) Params() (sinetable.Params, error) {
	return sinetable.Validate(g.config.NumberOfSines, g.config.PointsPerSine, g.config.Resolution)
}

// Run validates the configuration, writes the table and then runs the
// optional preview and audition steps.
func (g *Generator) Run(ctx context.Context) (err error) {
	params, err := g.Params()
	if err != nil {
		return err
	}

	dialect, err := sinetable.ParseDialect(g.config.Format)
	if err != nil {
		return err
	}
	opts := sinetable.FrameOptions{Name: g.config.ArrayName}

	// Check framing before touching the output path
	if _, err := sinetable.Frame(nil, params, dialect, opts); err != nil {
		return err
	}

	var echo io.Writer
	if g.config.Verbose {
		echo = g.echo
	}

	out, err := sink.Open(g.config.OutputPath, echo)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	log.Printf("[%s] Generating %s table: %s", g.runID, dialect, params)

	if err := sinetable.Write(out, params, dialect, opts); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if out.Discarding() {
		log.Printf("[%s] Wrote %d lines (discarded)", g.runID, params.Len())
	} else {
		log.Printf("[%s] Wrote %d lines to %s", g.runID, params.Len(), out.Path())
	}

	if g.config.Preview {
		if err := g.preview(params); err != nil {
			return fmt.Errorf("preview failed: %w", err)
		}
	}

	if g.config.PlayDuration > 0 {
		if err := g.audition(ctx, params); err != nil {
			return fmt.Errorf("audition failed: %w", err)
		}
	}

	return nil
}

// audition plays one period of the table as a looping tone
func (g *Generator) audition(ctx context.Context, params sinetable.Params) error {
	src, err := audio.NewTableSource(params.Period(), params.BitWidth, g.config.PlayFrequency,
		audio.DefaultSampleRate, audio.DefaultChannels)
	if err != nil {
		return err
	}

	log.Printf("[%s] Playing table at %.1fHz for %v", g.runID, g.config.PlayFrequency, g.config.PlayDuration)

	return output.Play(ctx, g.newOutput(g.config.Volume), src, g.config.PlayDuration)
}
