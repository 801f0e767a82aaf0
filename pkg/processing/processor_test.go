package processing

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage creates a simple test image
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x > width/3 && x < 2*width/3 && y > height/3 && y < 2*height/3 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				img.Set(x, y, color.RGBA{64, 64, 64, 255})
			}
		}
	}
	return img
}

func TestNewProcessor(t *testing.T) {
	if NewProcessor() == nil {
		t.Error("NewProcessor() returned nil")
	}
}

func TestSaveImageFormatWinsOverExtension(t *testing.T) {
	proc := NewProcessor()
	dir := t.TempDir()
	path := filepath.Join(dir, "processed_a.tif")

	if err := proc.SaveImage(createTestImage(32, 32), path, "jpg", 90, false); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := jpeg.Decode(f); err != nil {
		t.Errorf(".tif-named output is not JPEG encoded: %v", err)
	}
}

func TestSaveImagePNG(t *testing.T) {
	proc := NewProcessor()
	path := filepath.Join(t.TempDir(), "out.png")

	if err := proc.SaveImage(createTestImage(16, 16), path, "png", 0, false); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("output is not PNG encoded: %v", err)
	}
}

func TestLoadImageRoundTrip(t *testing.T) {
	proc := NewProcessor()
	path := filepath.Join(t.TempDir(), "img.png")
	if err := proc.SaveImage(createTestImage(24, 18), path, "png", 0, false); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	img, err := proc.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 18 {
		t.Errorf("loaded dimensions %v, want 24x18", img.Bounds())
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	proc := NewProcessor()
	if _, err := proc.LoadImage(filepath.Join(t.TempDir(), "nope.jpg")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadImageGarbage(t *testing.T) {
	proc := NewProcessor()
	path := filepath.Join(t.TempDir(), "junk.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := proc.LoadImage(path); err == nil {
		t.Error("expected error for non-image data")
	}
}
