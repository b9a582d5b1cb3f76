package images

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"masterlist/common"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeBackground(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 10, 200, 30, 255
	}
	data := encodePNG(t, src)

	t.Run("resized", func(t *testing.T) {
		img, err := DecodeBackground(data, 32, 48)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.Bounds() != image.Rect(0, 0, 32, 48) {
			t.Fatalf("unexpected bounds: %v", img.Bounds())
		}
		if c := img.NRGBAAt(16, 24); c != (color.NRGBA{10, 200, 30, 255}) {
			t.Fatalf("unexpected pixel: %v", c)
		}
	})

	t.Run("same size", func(t *testing.T) {
		img, err := DecodeBackground(data, 8, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.Bounds() != image.Rect(0, 0, 8, 4) {
			t.Fatalf("unexpected bounds: %v", img.Bounds())
		}
	})

	t.Run("svg", func(t *testing.T) {
		svg := []byte(`<?xml version="1.0"?>` + "\n" + `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10" fill="#0000ff"/></svg>`)
		img, err := DecodeBackground(svg, 20, 30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.Bounds() != image.Rect(0, 0, 20, 30) {
			t.Fatalf("unexpected bounds: %v", img.Bounds())
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := DecodeBackground([]byte("definitely not an image"), 10, 10); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("bad size", func(t *testing.T) {
		if _, err := DecodeBackground(data, 0, 10); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestLoadBackground(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBackground(filepath.Join(dir, "missing.png"), 10, 10); !errors.Is(err, common.ErrResource) {
		t.Fatalf("expected resource error, got %v", err)
	}

	broken := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(broken, []byte("\x89PNG\r\n\x1a\nbroken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBackground(broken, 10, 10); !errors.Is(err, common.ErrResource) {
		t.Fatalf("expected resource error, got %v", err)
	}

	good := filepath.Join(dir, "good.png")
	if err := os.WriteFile(good, encodePNG(t, image.NewGray(image.Rect(0, 0, 3, 3))), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := LoadBackground(good, 6, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsGrayscale(img) {
		t.Fatal("expected grayscale result")
	}
}

func TestIsSVG(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{`<svg xmlns="http://www.w3.org/2000/svg"/>`, true},
		{"\xef\xbb\xbf  <?xml version=\"1.0\"?><svg/>", true},
		{"<html><body></body></html>", false},
		{"svg", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSVG([]byte(tt.in)); got != tt.want {
			t.Errorf("IsSVG(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFlatten(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	img.SetNRGBA(5, 5, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(6, 5, color.NRGBA{0, 0, 0, 0})

	dst := Flatten(img, color.White)
	if dst.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("unexpected bounds: %v", dst.Bounds())
	}
	if c := dst.RGBAAt(0, 0); c != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("unexpected opaque pixel: %v", c)
	}
	if c := dst.RGBAAt(1, 0); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("unexpected transparent pixel: %v", c)
	}
}

func TestIsGrayscale(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if !IsGrayscale(img) {
		t.Fatal("blank image should be grayscale")
	}
	img.SetNRGBA(1, 1, color.NRGBA{1, 2, 3, 255})
	if IsGrayscale(img) {
		t.Fatal("colored image should not be grayscale")
	}
}
