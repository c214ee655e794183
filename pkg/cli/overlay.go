package cli

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Fepozopo/vseg/pkg/vibe"
)

// OverlayMask composites the mask over its source frame: foreground pixels
// are tinted half-red so the segmentation is readable against the scene.
func OverlayMask(frame *vibe.Frame, mask vibe.Mask) *image.NRGBA {
	out := frame.ToNRGBA()
	for i := 0; i < frame.W*frame.H && i < len(mask); i++ {
		if mask[i] != 1 {
			continue
		}
		o := i * 4
		out.Pix[o+0] = uint8((int(out.Pix[o+0]) + 255) / 2)
		out.Pix[o+1] = out.Pix[o+1] / 2
		out.Pix[o+2] = out.Pix[o+2] / 2
	}
	return out
}

// loadFace loads a TTF/OTF face at the given size, falling back to the
// built-in basic font when fontPath is empty or unusable.
func loadFace(fontPath string, size float64) font.Face {
	if fontPath == "" {
		return basicfont.Face7x13
	}
	data, err := os.ReadFile(fontPath)
	if err != nil {
		log.Printf("failed to read font file %s: %v, falling back to basic font", fontPath, err)
		return basicfont.Face7x13
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		log.Printf("failed to parse font: %v, falling back to basic", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("failed to create font face: %v, falling back to basic", err)
		return basicfont.Face7x13
	}
	return face
}

// AnnotateFrameNumber stamps "frame NNNNN" into the top-left corner of img.
// The image is modified in place.
func AnnotateFrameNumber(img *image.NRGBA, n int, fontPath string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{0, 255, 0, 255}),
		Face: loadFace(fontPath, 13),
		Dot:  fixed.Point26_6{X: fixed.I(2), Y: fixed.I(12)},
	}
	d.DrawString(fmt.Sprintf("frame %05d", n))
}

// WritePNG saves img to path.
func WritePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
