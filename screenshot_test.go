package pinchzoom

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-zoom", "after-zoom"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	v := &View{}
	v.Screenshot("a")
	v.Screenshot("b")
	v.Screenshot("c")
	if len(v.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(v.screenshotQueue))
	}
	if v.screenshotQueue[0] != "a" || v.screenshotQueue[1] != "b" || v.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", v.screenshotQueue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-transparent
		0, 0, 0, 0, // empty
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		255, 0, 0, 255,
		127, 63, 0, 128,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.Pix[0], src.Pix[3] = 200, 255
	if err := writePNG(path, src); err != nil {
		t.Fatalf("writePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("bounds = %v", b)
	}

	if err := writePNG(filepath.Join(dir, "missing", "x.png"), src); err == nil {
		t.Error("expected error for a missing directory")
	}
}
