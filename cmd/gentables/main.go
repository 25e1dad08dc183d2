// ABOUTME: Batch generator for a standard set of sine tables
// ABOUTME: Writes raw and VHDL tables for common NCO sizes in parallel
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/Resonate-Protocol/sinegen/internal/sink"
	"github.com/Resonate-Protocol/sinegen/pkg/sinetable"
)

// table is one entry of the standard set
type table struct {
	samples  int
	bitWidth int
}

var standardTables = []table{
	{256, 8},
	{256, 10},
	{1024, 12},
	{1024, 16},
	{4096, 16},
	{4096, 24},
}

var dialects = []sinetable.Dialect{sinetable.RawBits, sinetable.ArrayLiteral}

func main() {
	flag.Parse()
	dir := flag.Arg(0)
	if dir == "" {
		fmt.Fprintln(os.Stderr, "Usage: gentables <output-dir>")
		os.Exit(1)
	}
	log.SetFlags(log.Lshortfile)

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("error: %v", err)
	}

	if err := generateAll(context.Background(), dir, standardTables); err != nil {
		log.Fatalf("error: %v", err)
	}
	log.Println("Successfully generated sine tables.")
}

// generateAll writes every table in both dialects, one goroutine per file.
func generateAll(ctx context.Context, dir string, tables []table) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, t := range tables {
		for _, d := range dialects {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				path := filepath.Join(dir, fileName(t, d))
				if err := generate(path, t, d); err != nil {
					return err
				}
				log.Printf("saved %s", path)
				return nil
			})
		}
	}

	return g.Wait()
}

func generate(path string, t table, d sinetable.Dialect) (err error) {
	params, err := sinetable.Validate(1, t.samples, t.bitWidth)
	if err != nil {
		return err
	}

	out, err := sink.Open(path, nil)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	opts := sinetable.FrameOptions{Name: fmt.Sprintf("sine_%d_%d", t.samples, t.bitWidth)}
	return sinetable.Write(out, params, d, opts)
}

func fileName(t table, d sinetable.Dialect) string {
	ext := "txt"
	if d == sinetable.ArrayLiteral {
		ext = "vhd"
	}
	return fmt.Sprintf("sine_%d_%d.%s", t.samples, t.bitWidth, ext)
}
