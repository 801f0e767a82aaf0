// Package video assembles watermarked frames into a time-lapse video by
// shelling out to ffmpeg.
package video

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Encoder turns a folder of numbered frames into a video file.
type Encoder interface {
	Assemble(ctx context.Context, frameDir, outputPath string, inputFPS, outputFPS int) error
}

// FFmpegEncoder assembles frame-%d.jpg sequences with the ffmpeg binary
// found on PATH.
type FFmpegEncoder struct{}

func (e *FFmpegEncoder) buildArgs(frameDir, outputPath string, inputFPS, outputFPS int) []string {
	return []string{
		"-y",
		"-framerate", strconv.Itoa(inputFPS),
		"-i", filepath.Join(frameDir, "frame-%d.jpg"),
		"-r", strconv.Itoa(outputFPS),
		outputPath,
	}
}

// Assemble reads frame-0.jpg, frame-1.jpg, ... from frameDir at inputFPS
// and writes a video at outputFPS to outputPath. The container is chosen
// by ffmpeg from the output extension.
func (e *FFmpegEncoder) Assemble(ctx context.Context, frameDir, outputPath string, inputFPS, outputFPS int) error {
	args := e.buildArgs(frameDir, outputPath, inputFPS, outputFPS)
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if i := strings.LastIndexByte(msg, '\n'); i >= 0 {
			msg = msg[i+1:]
		}
		return fmt.Errorf("ffmpeg: %w: %s", err, msg)
	}
	return nil
}

// RemoveFrames deletes the intermediate frame-N.jpg files left behind by
// the watermark stage.
func RemoveFrames(frameDir string) error {
	matches, err := filepath.Glob(filepath.Join(frameDir, "frame-*.jpg"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return err
		}
	}
	return nil
}
