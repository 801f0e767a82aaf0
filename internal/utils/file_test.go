package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOutputName(t *testing.T) {
	if got := OutputName("processed_", "a.tif"); got != "processed_a.tif" {
		t.Errorf("OutputName = %q, want processed_a.tif", got)
	}
}

func TestGetFileExtension(t *testing.T) {
	cases := map[string]string{
		"a.JPG":    "jpg",
		"b.tiff":   "tiff",
		"noext":    "",
		"x.tar.gz": "gz",
	}
	for name, want := range cases {
		if got := GetFileExtension(name); got != want {
			t.Errorf("GetFileExtension(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestIsImageFile(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.TIF", "c.png", "d.webp"} {
		if !IsImageFile(name) {
			t.Errorf("IsImageFile(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"a.txt", "b", "c.mp4"} {
		if IsImageFile(name) {
			t.Errorf("IsImageFile(%q) = true, want false", name)
		}
	}
}

func TestListEntriesSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.tif", "b.tif"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ListEntries(dir)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if want := []string{"a.tif", "b.tif"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ListEntries = %v, want %v", got, want)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if !DirExists(dir) {
		t.Error("directory was not created")
	}
	// idempotent
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if FileExists(path) {
		t.Error("FileExists true for missing file")
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists false for existing file")
	}
	if FileExists(dir) {
		t.Error("FileExists true for a directory")
	}
}
