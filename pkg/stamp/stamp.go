// Package stamp watermarks processed frames with the capture time embedded
// in their file names and renumbers them as frame-N.jpg for video assembly.
package stamp

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/jchamness/batch-annotator/pkg/annotate"
	"github.com/jchamness/batch-annotator/pkg/processing"
)

// WatermarkFontPt is the size of the corner timestamp.
const WatermarkFontPt = 140

// Capture file names carry a %Y-%m-%d_%H:%M:%S timestamp; only the time
// part is stamped onto the frame.
var timePattern = regexp.MustCompile(`\d\d:\d\d:\d\d`)

// TimeFromName extracts the HH:MM:SS capture time from a file name.
func TimeFromName(name string) (string, bool) {
	ts := timePattern.FindString(name)
	return ts, ts != ""
}

// Watermark draws text in white in the top-right corner of the canvas,
// inset by an eighth of the rendered text's width and height.
func Watermark(c *annotate.Canvas, text string) error {
	if err := c.SetFontSize(WatermarkFontPt); err != nil {
		return err
	}
	c.SetColor(color.NRGBA{255, 255, 255, 255})
	tw, th, err := c.MeasureText(text)
	if err != nil {
		return err
	}
	w := c.Image().Bounds().Dx()
	x := w - tw - tw/8
	y := th + th/8
	return c.DrawText(x, y, text)
}

// Folder watermarks every image in dir with its name-extracted timestamp
// and writes the result as frame-<n>.jpg, n counting from 0 in sorted name
// order (the frame numbering downstream video assembly expects). Files
// without a recognizable timestamp are skipped with a log line. Returns
// the number of frames written.
func Folder(dir string, quality int) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read frame dir: %w", err)
	}

	proc := processing.NewProcessor()
	n := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, "frame-") {
			continue
		}
		ts, ok := TimeFromName(name)
		if !ok {
			log.Printf("no timestamp in %s, skipping", name)
			continue
		}

		img, err := proc.LoadImage(filepath.Join(dir, name))
		if err != nil {
			return n, fmt.Errorf("open %s: %w", name, err)
		}
		c := annotate.NewCanvas(imaging.Clone(img))
		if err := Watermark(c, ts); err != nil {
			return n, fmt.Errorf("watermark %s: %w", name, err)
		}

		outPath := filepath.Join(dir, fmt.Sprintf("frame-%d.jpg", n))
		if err := proc.SaveImage(c.Image(), outPath, "jpg", quality, false); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
