package cli

import (
	"fmt"
	"os"
	"path/filepath"
)

// InputFrameName returns the path of input frame n within dir. Input frames
// are unpadded: input0.ppm, input1.ppm, ...
func InputFrameName(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("input%d.ppm", n))
}

// OutputMaskName returns the path of the mask for frame n within dir,
// zero-padded so directory listings sort in frame order.
func OutputMaskName(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("output%05d.ppm", n))
}

// OutputOverlayName is the overlay counterpart of OutputMaskName.
func OutputOverlayName(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("output%05d.png", n))
}

// CountFrames scans dir for a contiguous input sequence starting at
// input0.ppm and returns its length: the first missing frame ends the
// sequence.
func CountFrames(dir string) int {
	n := 0
	for {
		if _, err := os.Stat(InputFrameName(dir, n)); err != nil {
			return n
		}
		n++
	}
}
