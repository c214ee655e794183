package cli

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"
)

// Terminal preview for segmentation masks, using the kitty graphics protocol,
// the iTerm2-style OSC 1337 inline sequence, or chafa as a last resort.
// Preview is best-effort and opt-in: a run never fails because the terminal
// cannot display images.
//
// Debugging helper controlled by VSEG_DEBUG=1.
var previewDebug bool

func init() {
	debug := os.Getenv("VSEG_DEBUG")
	if debug == "1" || debug == "true" {
		previewDebug = true
	}
}

func debugf(format string, args ...interface{}) {
	if previewDebug {
		fmt.Fprintf(os.Stderr, "vseg-preview: "+format+"\n", args...)
	}
}

func isKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "kitty") || strings.Contains(term, "ghostty")
}

// isInlineImageCapable detects terminals implementing the iTerm2-style inline
// image OSC: iTerm2 itself plus the modern emulators that adopted it.
func isInlineImageCapable() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Warp", "Hyper", "vscode", "VSCode", "Tabby":
		return true
	}
	if os.Getenv("ITERM_SESSION_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "wezterm") || strings.Contains(term, "warp") || strings.Contains(term, "tabby")
}

func hasChafa() bool {
	_, err := exec.LookPath("chafa")
	return err == nil
}

// PreviewSupported reports whether some preview backend is likely to work.
func PreviewSupported() bool {
	supported := isKitty() || isInlineImageCapable() || hasChafa()
	debugf("PreviewSupported -> %v (kitty=%v inline=%v chafa=%v)", supported, isKitty(), isInlineImageCapable(), hasChafa())
	return supported
}

// PreviewImage encodes img as PNG and renders it inline in the terminal.
func PreviewImage(img *image.NRGBA) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode failed: %w", err)
	}
	blob := buf.Bytes()

	if isKitty() {
		debugf("attempting kitty protocol")
		if err := sendKittyImage(blob); err == nil {
			return nil
		} else {
			debugf("kitty protocol failed: %v", err)
		}
	}
	if isInlineImageCapable() {
		debugf("attempting inline protocol")
		if err := sendInlineImage(blob); err == nil {
			return nil
		} else {
			debugf("inline protocol failed: %v", err)
		}
	}
	if hasChafa() {
		debugf("attempting chafa")
		if err := sendChafaImage(blob); err == nil {
			return nil
		} else {
			debugf("chafa failed: %v", err)
		}
	}
	return fmt.Errorf("no preview protocol matched")
}

// sendKittyImage transmits PNG bytes with the kitty graphics protocol,
// chunking the base64 payload into <=4096-byte chunks per the spec. q=2
// suppresses terminal responses.
func sendKittyImage(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	enc := base64.StdEncoding.EncodeToString(data)
	const chunkSize = 4096

	first := true
	for pos := 0; pos < len(enc); pos += chunkSize {
		end := pos + chunkSize
		if end > len(enc) {
			end = len(enc)
		}
		mVal := "0"
		if end < len(enc) {
			mVal = "1"
		}
		var seq string
		if first {
			seq = fmt.Sprintf("\x1b_Ga=T,f=100,t=d,q=2,m=%s;%s\x1b\\", mVal, enc[pos:end])
			first = false
		} else {
			seq = "\x1b_Gm=" + mVal + ";" + enc[pos:end] + "\x1b\\"
		}
		if _, err := os.Stdout.Write([]byte(seq)); err != nil {
			return err
		}
	}
	fmt.Println()
	return nil
}

// sendInlineImage emits the iTerm2-style OSC 1337 inline file sequence.
func sendInlineImage(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	enc := base64.StdEncoding.EncodeToString(data)
	seq := fmt.Sprintf("\x1b]1337;File=name=mask.png;inline=1;size=%d:%s\a", len(data), enc)
	_, err := os.Stdout.Write([]byte(seq))
	fmt.Println()
	return err
}

// sendChafaImage pipes PNG bytes through chafa for a block-character
// rendering in terminals without an image protocol.
func sendChafaImage(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	cmd := exec.Command("chafa", "--fill=block", "--symbols=block", "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("chafa failed: %w", err)
	}
	return nil
}
