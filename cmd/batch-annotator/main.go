package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	annotator "github.com/jchamness/batch-annotator"
	"github.com/jchamness/batch-annotator/internal/config"
	"github.com/jchamness/batch-annotator/internal/utils"
	"github.com/jchamness/batch-annotator/internal/watch"
	"github.com/jchamness/batch-annotator/pkg/stamp"
	"github.com/jchamness/batch-annotator/pkg/video"
)

func main() {
	var mode, inDir, outDir, cfgPath string
	var workers, quality, fps int
	var format, prefix string
	var watchMode, timestamps, makeVideo bool

	flag.StringVar(&mode, "mode", "", "annotation mode: "+strings.Join(annotator.New().Modes(), ", "))
	flag.StringVar(&inDir, "in", "", "input directory of raw captures")
	flag.StringVar(&outDir, "out", "", "output directory for processed frames")
	flag.StringVar(&cfgPath, "config", "", "path to JSON config file (optional)")

	flag.IntVar(&workers, "workers", 0, "files processed concurrently (0 = from config, default sequential)")
	flag.IntVar(&quality, "quality", 0, "JPEG/WebP output quality 1-100 (0 = from config)")
	flag.StringVar(&format, "format", "", "output encoding: jpg|png|webp (default from config)")
	flag.StringVar(&prefix, "prefix", "", "output file name prefix (default from config)")

	flag.BoolVar(&watchMode, "watch", false, "keep running and process files as they appear in the input directory")
	flag.BoolVar(&timestamps, "timestamp", false, "after the batch, watermark outputs with their capture time and renumber as frame-N.jpg")
	flag.BoolVar(&makeVideo, "video", false, "after timestamping, assemble frames into a time-lapse video (implies -timestamp)")
	flag.IntVar(&fps, "fps", 0, "input framerate for video assembly (0 = from config)")

	flag.Parse()
	if mode == "" || inDir == "" || outDir == "" {
		log.Fatalf("usage: %s -mode sv1|sv2 -in rawdir -out outdir [-watch] [-timestamp] [-video]", filepath.Base(os.Args[0]))
	}

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if workers > 0 {
		cfg.Batch.Workers = workers
	}
	if quality > 0 {
		cfg.Output.Quality = quality
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if prefix != "" {
		cfg.Output.Prefix = prefix
	}
	if fps > 0 {
		cfg.Video.InputFPS = fps
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if err := utils.EnsureDir(outDir); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ann := annotator.NewWithConfig(cfg)

	start := time.Now()
	if err := ann.ProcessFolder(ctx, mode, inDir, outDir); err != nil {
		log.Fatal(err)
	}
	log.Printf("batch done in %s", time.Since(start).Round(time.Millisecond))

	if watchMode {
		err := watch.Directory(ctx, inDir,
			time.Duration(cfg.Watch.DebounceMs)*time.Millisecond,
			utils.IsImageFile,
			func(name string) error {
				log.Printf("processing %s", name)
				return ann.ProcessFile(mode, inDir, outDir, name)
			})
		if err != nil && err != context.Canceled {
			log.Fatal(err)
		}
	}

	if timestamps || makeVideo {
		n, err := stamp.Folder(outDir, cfg.Output.Quality)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %d timestamped frames", n)
	}

	if makeVideo {
		enc := &video.FFmpegEncoder{}
		outPath := filepath.Join(outDir, filepath.Base(outDir)+".avi")
		if err := enc.Assemble(ctx, outDir, outPath, cfg.Video.InputFPS, cfg.Video.OutputFPS); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", outPath)
		if !cfg.Video.KeepFrames {
			if err := video.RemoveFrames(outDir); err != nil {
				log.Fatal(err)
			}
		}
	}

	fmt.Println("\nDone!")
}
