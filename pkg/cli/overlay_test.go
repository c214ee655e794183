package cli

import (
	"testing"

	"github.com/Fepozopo/vseg/pkg/vibe"
)

func grayFrame(w, h int) *vibe.Frame {
	f := vibe.NewFrame(w, h)
	for i := range f.Pix {
		f.Pix[i] = 100
	}
	return f
}

func TestOverlayMaskTintsForeground(t *testing.T) {
	frame := grayFrame(4, 4)
	mask := make(vibe.Mask, 16)
	mask[5] = 1

	img := OverlayMask(frame, mask)

	// Foreground pixel is pushed toward red.
	o := 5 * 4
	if img.Pix[o] != (100+255)/2 || img.Pix[o+1] != 50 || img.Pix[o+2] != 50 {
		t.Fatalf("foreground pixel = (%d,%d,%d)", img.Pix[o], img.Pix[o+1], img.Pix[o+2])
	}
	// Background pixels are untouched and opaque.
	o = 6 * 4
	if img.Pix[o] != 100 || img.Pix[o+1] != 100 || img.Pix[o+2] != 100 || img.Pix[o+3] != 255 {
		t.Fatalf("background pixel = (%d,%d,%d,%d)", img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3])
	}
}

func TestAnnotateFrameNumberDrawsSomething(t *testing.T) {
	mask := make(vibe.Mask, 64*32)
	img := mask.ToNRGBA(64, 32)
	before := make([]uint8, len(img.Pix))
	copy(before, img.Pix)

	AnnotateFrameNumber(img, 42, "")

	changed := false
	for i := range img.Pix {
		if img.Pix[i] != before[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Fatal("expected annotation to modify the image")
	}
}

func TestAnnotateFallsBackOnMissingFont(t *testing.T) {
	mask := make(vibe.Mask, 64*32)
	img := mask.ToNRGBA(64, 32)
	// A bogus font path must not panic; the basic font is used instead.
	AnnotateFrameNumber(img, 0, "/nonexistent/font.ttf")
}
