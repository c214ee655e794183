package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Fepozopo/vseg/pkg/vibe"
)

// Config bundles the engine parameters with the driver's own options. All of
// it comes from the environment, optionally seeded from a .env file in the
// working directory.
type Config struct {
	Params vibe.Params

	// Seed fixes the engine's random source for reproducible runs. When
	// SeedSet is false the driver derives a seed from the wall clock.
	Seed    int64
	SeedSet bool

	// PreviewEvery shows a terminal preview of every K-th mask; 0 disables.
	PreviewEvery int

	// Overlay writes mask-over-frame composites (PNG) instead of raw P3
	// masks. Annotate stamps the frame number onto that output.
	Overlay  bool
	Annotate bool

	// FontPath optionally points at a TTF/OTF file for annotation; the
	// built-in basic font is used otherwise.
	FontPath string
}

func envBool(name string) bool {
	switch os.Getenv(name) {
	case "1", "true", "TRUE", "yes", "on":
		return true
	}
	return false
}

// LoadConfig loads an optional .env file and builds the driver configuration
// from VSEG_* variables on top of the design defaults.
func LoadConfig() (Config, error) {
	// Ignore error if .env is not present; it's optional.
	_ = godotenv.Load()

	params, err := vibe.FromEnv(vibe.DefaultParams())
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Params:   params,
		Overlay:  envBool("VSEG_OVERLAY"),
		Annotate: envBool("VSEG_ANNOTATE"),
		FontPath: os.Getenv("VSEG_FONT"),
	}

	if s := os.Getenv("VSEG_SEED"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid VSEG_SEED=%q: %w", s, err)
		}
		cfg.Seed = v
		cfg.SeedSet = true
	}

	if s := os.Getenv("VSEG_PREVIEW"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return Config{}, fmt.Errorf("invalid VSEG_PREVIEW=%q", s)
		}
		cfg.PreviewEvery = v
	}

	return cfg, nil
}
