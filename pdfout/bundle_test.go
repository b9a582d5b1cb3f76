package pdfout

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"masterlist/common"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func TestBundle(t *testing.T) {
	dir := t.TempDir()
	var pages []string
	for _, n := range []string{"p_01.png", "p_02.png", "p_03.png"} {
		p := filepath.Join(dir, n)
		writePNG(t, p, 54, 96)
		pages = append(pages, p)
	}

	dst := filepath.Join(dir, "out", "bundle.pdf")
	if err := Bundle(pages, dst, Options{Size: "A4", Margin: 10}); err != nil {
		t.Fatalf("Bundle() error = %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("unable to read result: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("result is not a pdf")
	}
	if n := bytes.Count(data, []byte("/Type /Page\n")); n != len(pages) {
		t.Errorf("pdf has %d pages, want %d", n, len(pages))
	}
}

func TestBundleErrors(t *testing.T) {
	dir := t.TempDir()

	if err := Bundle(nil, filepath.Join(dir, "x.pdf"), Options{}); !errors.Is(err, common.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Bundle([]string{bad}, filepath.Join(dir, "x.pdf"), Options{}); !errors.Is(err, common.ErrResource) {
		t.Errorf("expected resource error, got %v", err)
	}

	good := filepath.Join(dir, "good.png")
	writePNG(t, good, 10, 10)
	if err := Bundle([]string{good}, filepath.Join(dir, "x.pdf"), Options{Margin: 200}); !errors.Is(err, common.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"m_10.png", "m_2.png", "m_1.png", "other_1.png", "notes.txt", ".m_3.png.tmp", ".hidden.png"} {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Collect(dir, "m_")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	want := []string{filepath.Join(dir, "m_1.png"), filepath.Join(dir, "m_2.png"), filepath.Join(dir, "m_10.png")}
	if !slices.Equal(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}

	all, err := Collect(dir, "")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Collect() without prefix = %v", all)
	}

	if _, err := Collect(filepath.Join(dir, "missing"), ""); !errors.Is(err, common.ErrResource) {
		t.Errorf("expected resource error, got %v", err)
	}
}
