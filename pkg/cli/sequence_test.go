package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFrameNames(t *testing.T) {
	if got := InputFrameName("in", 0); got != filepath.Join("in", "input0.ppm") {
		t.Fatalf("InputFrameName = %q", got)
	}
	if got := InputFrameName("in", 12); got != filepath.Join("in", "input12.ppm") {
		t.Fatalf("InputFrameName = %q", got)
	}
	if got := OutputMaskName("out", 7); got != filepath.Join("out", "output00007.ppm") {
		t.Fatalf("OutputMaskName = %q", got)
	}
	if got := OutputOverlayName("out", 1285); got != filepath.Join("out", "output01285.png") {
		t.Fatalf("OutputOverlayName = %q", got)
	}
}

func TestCountFrames(t *testing.T) {
	dir := t.TempDir()
	if n := CountFrames(dir); n != 0 {
		t.Fatalf("empty dir count = %d, want 0", n)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(InputFrameName(dir, i), []byte("P3\n1 1 255\n0 0 0\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// A gap after frame 2 ends the sequence even if later frames exist.
	if err := os.WriteFile(InputFrameName(dir, 4), []byte("P3\n1 1 255\n0 0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if n := CountFrames(dir); n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}
