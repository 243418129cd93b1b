package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 2, color.RGBA{R: 0xff, A: 0xff})
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("Bounds() = %v, want %v", got.Bounds(), img.Bounds())
	}
	if r, _, _, _ := got.At(1, 2).RGBA(); r != 0xffff {
		t.Errorf("pixel (1,2) red = %#x, want 0xffff", r)
	}
}

func TestWritePNGCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := writePNG(path, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("writePNG() into a missing directory succeeded")
	}
}
