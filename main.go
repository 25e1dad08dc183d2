// ABOUTME: Entry point for the sine table generator
// ABOUTME: Parses CLI flags and writes a quantized sine lookup table
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Resonate-Protocol/sinegen/internal/app"
	"github.com/Resonate-Protocol/sinegen/internal/version"
	"github.com/Resonate-Protocol/sinegen/pkg/sinetable"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line
type options struct {
	config      app.Config
	logFile     string
	showVersion bool
	help        bool
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("sinegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	c := &opts.config
	fs.IntVar(&c.NumberOfSines, "n", 0, "The number of sines to produce")
	fs.IntVar(&c.NumberOfSines, "numberOfSines", 0, "Alias for -n")
	fs.IntVar(&c.PointsPerSine, "p", 0, "The number of points per sine to generate")
	fs.IntVar(&c.PointsPerSine, "pointsPerSine", 0, "Alias for -p")
	fs.IntVar(&c.Resolution, "r", 0, "The resolution in bit of the output (1 to 64)")
	fs.IntVar(&c.Resolution, "resolution", 0, "Alias for -r")
	fs.StringVar(&c.OutputPath, "o", os.DevNull, "Output file path")
	fs.StringVar(&c.OutputPath, "output", os.DevNull, "Alias for -o")
	fs.BoolVar(&c.Verbose, "v", false, "Echo every generated line to stdout")
	fs.BoolVar(&c.Verbose, "verbose", false, "Alias for -v")
	fs.StringVar(&c.Format, "f", "raw", "Output format: raw (bit strings) or vhdl (array literal)")
	fs.StringVar(&c.Format, "format", "raw", "Alias for -f")
	fs.StringVar(&c.ArrayName, "name", sinetable.DefaultArrayName, "VHDL array identifier for -f vhdl")
	fs.BoolVar(&c.Preview, "tui", false, "Preview the table in an interactive terminal UI")
	fs.DurationVar(&c.PlayDuration, "play", 0, "Audition the table as a tone for this long (e.g. 2s)")
	fs.Float64Var(&c.PlayFrequency, "freq", 440, "Audition tone frequency in Hz")
	fs.IntVar(&c.Volume, "volume", 50, "Audition volume (0-100)")
	fs.StringVar(&opts.logFile, "log-file", "", "Also write logs to this file")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&opts.help, "?", false, "Show this message")

	fs.Usage = func() { printUsage(stderr) }
	return fs
}

func run(args []string, stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "%s\n\n", version.Banner())

	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if opts.help {
		fs.Usage()
		return 0
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "%s %s\n", version.Product, version.Version)
		return 0
	}

	// Set up logging
	log.SetOutput(stderr)
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(stderr, "error opening log file: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
		log.SetOutput(io.MultiWriter(stderr, f))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := app.New(opts.config, stdout)
	if err := gen.Run(ctx); err != nil {
		fmt.Fprintln(stderr, err)

		var perr *sinetable.ParamError
		if errors.As(err, &perr) || errors.Is(err, sinetable.ErrUnknownDialect) || errors.Is(err, sinetable.ErrInvalidName) {
			printUsage(stderr)
		}
		return 1
	}

	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: sinegen <options>\n"+
		"Options:\n"+
		"\t-h,--help\t\t Show this message\n"+
		"\t-n,--numberOfSines\t The number of sines to produce\n"+
		"\t-p,--pointsPerSine\t The number of points per sine to generate\n"+
		"\t-r,--resolution\t\t The resolution in bit of the output (1 to 64)\n"+
		"\t-o,--output\t\t Output file path (default %s)\n"+
		"\t-f,--format\t\t raw or vhdl (default raw)\n"+
		"\t-name\t\t\t VHDL array identifier (default %s)\n"+
		"\t-v,--verbose\t\t Echo every generated line to stdout\n"+
		"\t-tui\t\t\t Preview the table interactively\n"+
		"\t-play <duration>\t Audition the table as a tone (-freq, -volume)\n"+
		"\t-log-file <path>\t Also write logs to this file\n"+
		"\t-version\t\t Print version and exit\n\n",
		os.DevNull, sinetable.DefaultArrayName)
}
