// Package modes holds the per-file transforms and the dispatch table that
// maps a mode name to one of them. Each transform owns its image for the
// duration of one file: open, filter, annotate, export. Nothing is shared
// between calls, so transforms are safe to run concurrently on different
// files.
package modes

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"sort"

	"github.com/jchamness/batch-annotator/pkg/filter"
	"github.com/jchamness/batch-annotator/pkg/processing"
)

// Options controls how transforms export their results.
type Options struct {
	Quality int    // JPEG/WebP quality (1-100)
	Format  string // output encoding: jpg, png or webp
	Prefix  string // prepended to the input file name
}

func (o Options) withDefaults() Options {
	if o.Quality == 0 {
		o.Quality = 90
	}
	if o.Format == "" {
		o.Format = "jpg"
	}
	if o.Prefix == "" {
		o.Prefix = "processed_"
	}
	return o
}

// Transform processes a single file from inputDir into outputDir. The
// output file is named opts.Prefix plus the input file name.
type Transform func(opts Options, inputDir, outputDir, fileName string) error

var registry = map[string]Transform{
	"example": Example,
	"sv1":     DroughtLabels,
	"sv2":     RecyclingRegions,
}

// Lookup returns the transform registered under name.
func Lookup(name string) (Transform, bool) {
	t, ok := registry[name]
	return t, ok
}

// Names returns the registered mode names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Example is a template transform: it performs no image I/O and only emits
// a marker line. Kept as a starting point for new annotation scripts.
func Example(_ Options, inputDir, outputDir, fileName string) error {
	log.Printf("example transform: %s (in=%s out=%s)", fileName, inputDir, outputDir)
	return nil
}

// Normalize/denoise settings shared by both annotation scripts. The narrow
// display window suits the dim long-exposure captures from the growth
// chamber rig.
const (
	windowMin        = 0
	windowMax        = 25
	outlierRadius    = 1
	outlierThreshold = 50
)

func inputPathOf(inputDir, fileName string) string {
	return filepath.Join(inputDir, fileName)
}

// prepare opens an image and runs the standard filter chain over it.
func prepare(inputPath string) (*image.NRGBA, error) {
	proc := processing.NewProcessor()
	img, err := proc.LoadImage(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", inputPath, err)
	}
	windowed := filter.DisplayWindow(img, windowMin, windowMax)
	cleaned := filter.RemoveBrightOutliers(windowed, outlierRadius, outlierThreshold)
	return filter.Despeckle(cleaned), nil
}

// export writes the annotated image under its derived output name.
func export(img image.Image, opts Options, outputDir, fileName string) error {
	outPath := filepath.Join(outputDir, opts.Prefix+fileName)
	proc := processing.NewProcessor()
	if err := proc.SaveImage(img, outPath, opts.Format, opts.Quality, false); err != nil {
		return fmt.Errorf("export %s: %v", outPath, err)
	}
	return nil
}
