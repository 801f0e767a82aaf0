package video

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	e := &FFmpegEncoder{}
	got := e.buildArgs("/frames", "/frames/SV2.avi", 4, 30)
	want := []string{
		"-y",
		"-framerate", "4",
		"-i", filepath.Join("/frames", "frame-%d.jpg"),
		"-r", "30",
		"/frames/SV2.avi",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildArgs = %v, want %v", got, want)
	}
}

func TestRemoveFrames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"frame-0.jpg", "frame-1.jpg", "keep.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := RemoveFrames(dir); err != nil {
		t.Fatalf("RemoveFrames failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "keep.jpg" {
		t.Errorf("unexpected survivors: %v", entries)
	}
}
