package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Fepozopo/vseg/pkg/ppm"
	"github.com/Fepozopo/vseg/pkg/vibe"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  vseg <input-dir> [output-dir] [frame-count]")
	fmt.Println("  vseg update    check for a new release and self-update")
	fmt.Println("  vseg version   print the version")
	fmt.Println()
	fmt.Println("Input frames are input0.ppm, input1.ppm, ... (PPM P3); masks are")
	fmt.Println("written as output00000.ppm, output00001.ppm, ... With no input")
	fmt.Println("directory, fzf is used to pick an input0.ppm somewhere below the")
	fmt.Println("current directory.")
	fmt.Println()
	fmt.Println("Configuration comes from VSEG_* environment variables (or a .env")
	fmt.Println("file): WIDTH, HEIGHT, SAMPLES, RADIUS, MATCHES, PHI, REINIT_RATIO,")
	fmt.Println("SEED, PREVIEW, OVERLAY, ANNOTATE, FONT.")
}

// promptLine displays a prompt and reads a full line of input, trimmed of
// surrounding whitespace.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// selectSequenceWithFzf shells out to find+fzf to pick an input0.ppm below
// the current directory and returns the directory containing it. Requires
// both tools in PATH.
func selectSequenceWithFzf() (string, error) {
	find := exec.Command("find", ".", "-type", "f", "-name", "input0.ppm")
	listing, err := find.Output()
	if err != nil {
		return "", fmt.Errorf("error running find: %w", err)
	}
	if len(bytes.TrimSpace(listing)) == 0 {
		return "", fmt.Errorf("no input0.ppm found below the current directory")
	}

	cmd := exec.Command("fzf")
	cmd.Stdin = bytes.NewReader(listing)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("error running fzf: %w", err)
	}
	selection := strings.TrimSpace(out.String())
	if selection == "" {
		return "", fmt.Errorf("no sequence selected")
	}
	return filepath.Dir(selection), nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// RunCLI is the vseg entry point: it segments a PPM frame sequence into
// per-frame masks and prints timing statistics.
func RunCLI() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "update":
			if err := CheckForUpdates(); err != nil {
				fatalf("update check error: %v", err)
			}
			return
		case "version":
			fmt.Printf("vseg %s\n", Version)
			return
		case "help", "-h", "--help":
			usage()
			return
		}
	}

	cfg, err := LoadConfig()
	if err != nil {
		fatalf("configuration error: %v", err)
	}

	var inDir, outDir string
	count := -1
	switch len(args) {
	case 0:
		inDir, err = selectSequenceWithFzf()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n\n", err)
			usage()
			os.Exit(1)
		}
		outDir = filepath.Join(inDir, "output")
	case 1:
		inDir = args[0]
		outDir = filepath.Join(inDir, "output")
	default:
		inDir = args[0]
		outDir = args[1]
		if len(args) >= 3 {
			count, err = strconv.Atoi(args[2])
			if err != nil || count <= 0 {
				fatalf("invalid frame count %q", args[2])
			}
		}
	}

	if count < 0 {
		count = CountFrames(inDir)
	}
	if count == 0 {
		fatalf("no input frames found in %s", inDir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fatalf("cannot create output directory: %v", err)
	}

	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = time.Now().UnixNano()
	}
	eng, err := vibe.New(cfg.Params, seed)
	if err != nil {
		fatalf("engine setup error: %v", err)
	}

	var total time.Duration
	for n := 0; n < count; n++ {
		w, h, pix, err := ppm.DecodeFile(InputFrameName(inDir, n))
		if err != nil {
			fatalf("frame %d: %v", n, err)
		}
		frame := &vibe.Frame{W: w, H: h, Pix: pix}

		start := time.Now()
		var mask vibe.Mask
		if n == 0 {
			mask, err = eng.InitFromFrame(frame)
		} else {
			mask, err = eng.ProcessFrame(frame)
		}
		total += time.Since(start)
		if err != nil {
			fatalf("frame %d: %v", n, err)
		}

		if err := writeResult(outDir, n, cfg, frame, mask); err != nil {
			fatalf("frame %d: %v", n, err)
		}

		if cfg.PreviewEvery > 0 && n%cfg.PreviewEvery == 0 {
			// Preview failures are not fatal; the masks are already on disk.
			_ = PreviewImage(mask.ToNRGBA(w, h))
		}
	}

	fmt.Printf("total_time: %f\n", total.Seconds())
	fmt.Printf("total_frames: %d\n", count)
	if total > 0 {
		fmt.Printf("frames per second: %f\n", float64(count)/total.Seconds())
	}
}

// writeResult writes frame n's output: a raw P3 mask by default, or a PNG
// composite when overlay/annotation is configured.
func writeResult(outDir string, n int, cfg Config, frame *vibe.Frame, mask vibe.Mask) error {
	if !cfg.Overlay && !cfg.Annotate {
		return ppm.EncodeMaskFile(OutputMaskName(outDir, n), frame.W, frame.H, mask)
	}
	var img *image.NRGBA
	if cfg.Overlay {
		img = OverlayMask(frame, mask)
	} else {
		img = mask.ToNRGBA(frame.W, frame.H)
	}
	if cfg.Annotate {
		AnnotateFrameNumber(img, n, cfg.FontPath)
	}
	return WritePNG(OutputOverlayName(outDir, n), img)
}
