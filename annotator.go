// Package annotator batch-annotates folders of time-lapse plant imagery.
//
// Every image in an input folder goes through the same fixed pipeline:
// display-window normalization, bright-outlier removal and despeckling,
// followed by one of the registered annotation scripts (selected by mode
// name) which stamps treatment labels or outlines labeled regions of
// interest at fixed plate coordinates. Results are exported as JPEG under
// a processed_ prefix; input files are never touched.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"log"
//
//		annotator "github.com/jchamness/batch-annotator"
//	)
//
//	func main() {
//		ann := annotator.New()
//		if err := ann.ProcessFolder(context.Background(), "sv2", "raw/SV2", "processed/SV2"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of four main components:
//
// 1. Filter (pkg/filter): the fixed normalize/denoise chain
// 2. Annotate (pkg/annotate): an explicit per-image drawing context
// 3. Modes (pkg/modes): the dispatch table of annotation scripts
// 4. Stamp/Video (pkg/stamp, pkg/video): timestamp watermarking and
// time-lapse assembly of the processed frames
//
// Processing is sequential by default: one image is opened, transformed,
// exported and released before the next begins. Because every transform
// scopes its drawing state to the file it processes, the batch can also
// run with a bounded worker pool without cross-file contamination.
package annotator

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jchamness/batch-annotator/internal/config"
	"github.com/jchamness/batch-annotator/pkg/modes"
)

// Version of the batch annotator library
const Version = "1.0.0"

// BatchAnnotator applies a mode's annotation script across a folder.
type BatchAnnotator struct {
	opts    modes.Options
	workers int
}

// New creates a BatchAnnotator with default configuration.
func New() *BatchAnnotator {
	return NewWithConfig(config.Default())
}

// NewWithConfig creates a BatchAnnotator from an application config.
func NewWithConfig(cfg *config.Config) *BatchAnnotator {
	workers := cfg.Batch.Workers
	if workers < 1 {
		workers = 1
	}
	return &BatchAnnotator{
		opts: modes.Options{
			Quality: cfg.Output.Quality,
			Format:  cfg.Output.Format,
			Prefix:  cfg.Output.Prefix,
		},
		workers: workers,
	}
}

// Modes returns the available mode names.
func (b *BatchAnnotator) Modes() []string {
	return modes.Names()
}

// ProcessFile runs the selected mode's transform on a single file.
func (b *BatchAnnotator) ProcessFile(mode, inputDir, outputDir, fileName string) error {
	t, ok := modes.Lookup(mode)
	if !ok {
		return unknownMode(mode)
	}
	return t(b.opts, inputDir, outputDir, fileName)
}

// ProcessFolder runs the selected mode's transform over every
// non-directory entry of inputDir, writing results into outputDir.
// Subdirectories are skipped, never recursed into. An unknown mode fails
// before any file is touched. The first per-file error stops the batch;
// outputs already written remain in place.
func (b *BatchAnnotator) ProcessFolder(ctx context.Context, mode, inputDir, outputDir string) error {
	t, ok := modes.Lookup(mode)
	if !ok {
		return unknownMode(mode)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Printf("processing %s", name)
			return t(b.opts, inputDir, outputDir, name)
		})
	}
	return g.Wait()
}

func unknownMode(mode string) error {
	return fmt.Errorf("unknown mode %q (available: %s)", mode, strings.Join(modes.Names(), ", "))
}
