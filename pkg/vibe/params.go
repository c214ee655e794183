package vibe

import (
	"fmt"
	"os"
	"strconv"
)

// Params holds the tunable constants of the segmenter. The zero value is not
// usable; start from DefaultParams and override what you need.
type Params struct {
	// Width and Height fix the frame dimensions for the life of the engine.
	Width  int
	Height int
	// Samples is the number of background samples kept per pixel.
	Samples int
	// Radius is the euclidean color-space radius within which an observed
	// value is considered consistent with a stored sample.
	Radius int
	// Matches is the minimum number of matching samples needed to classify
	// an observed pixel as background.
	Matches int
	// Phi is the inverse update probability: each stochastic model update
	// fires with chance 1/Phi.
	Phi int
	// ImmediateExtent and ExtendedExtent are the window sizes used when
	// picking a random neighbor for diffusion updates. Both offsets of a
	// neighbor are nonzero, so ImmediateExtent=2 reaches the four diagonal
	// neighbors and ExtendedExtent=4 covers a 5x5 window minus the center row
	// and column.
	ImmediateExtent int
	ExtendedExtent  int
	// ReinitRatio is the foreground ratio above which the whole model is
	// rebuilt from the current frame.
	ReinitRatio float64
	// MaxChannel is the channel depth frames must declare (always 255 for
	// 8-bit PPM input).
	MaxChannel int
}

// DefaultParams returns the design defaults.
func DefaultParams() Params {
	return Params{
		Width:           320,
		Height:          256,
		Samples:         20,
		Radius:          20,
		Matches:         2,
		Phi:             16,
		ImmediateExtent: 2,
		ExtendedExtent:  4,
		ReinitRatio:     0.5,
		MaxChannel:      255,
	}
}

// Validate checks that the parameter set describes a runnable engine.
func (p Params) Validate() error {
	if p.Width < 2 || p.Height < 2 {
		return fmt.Errorf("frame dimensions must be at least 2x2, got %dx%d", p.Width, p.Height)
	}
	if p.Samples <= 0 {
		return fmt.Errorf("sample count must be positive, got %d", p.Samples)
	}
	if p.Matches <= 0 || p.Matches > p.Samples {
		return fmt.Errorf("match threshold must be in [1,%d], got %d", p.Samples, p.Matches)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("color radius must be positive, got %d", p.Radius)
	}
	if p.Phi <= 0 {
		return fmt.Errorf("inverse update probability must be positive, got %d", p.Phi)
	}
	if p.ImmediateExtent < 2 || p.ExtendedExtent < 2 {
		return fmt.Errorf("neighbor extents must be at least 2, got %d/%d", p.ImmediateExtent, p.ExtendedExtent)
	}
	if p.ReinitRatio <= 0 || p.ReinitRatio > 1 {
		return fmt.Errorf("reinit ratio must be in (0,1], got %g", p.ReinitRatio)
	}
	if p.MaxChannel != 255 {
		return fmt.Errorf("only 8-bit channels are supported, got max value %d", p.MaxChannel)
	}
	return nil
}

// envInt parses an integer override from the environment. An unset or empty
// variable leaves cur untouched; a malformed value is an error.
func envInt(name string, cur int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return cur, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", name, s, err)
	}
	return v, nil
}

func envFloat(name string, cur float64) (float64, error) {
	s := os.Getenv(name)
	if s == "" {
		return cur, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", name, s, err)
	}
	return v, nil
}

// FromEnv applies VSEG_* environment overrides on top of base and validates
// the result. Callers that want .env support should load it first (the CLI
// does, via godotenv).
func FromEnv(base Params) (Params, error) {
	p := base
	var err error
	if p.Width, err = envInt("VSEG_WIDTH", p.Width); err != nil {
		return Params{}, err
	}
	if p.Height, err = envInt("VSEG_HEIGHT", p.Height); err != nil {
		return Params{}, err
	}
	if p.Samples, err = envInt("VSEG_SAMPLES", p.Samples); err != nil {
		return Params{}, err
	}
	if p.Radius, err = envInt("VSEG_RADIUS", p.Radius); err != nil {
		return Params{}, err
	}
	if p.Matches, err = envInt("VSEG_MATCHES", p.Matches); err != nil {
		return Params{}, err
	}
	if p.Phi, err = envInt("VSEG_PHI", p.Phi); err != nil {
		return Params{}, err
	}
	if p.ReinitRatio, err = envFloat("VSEG_REINIT_RATIO", p.ReinitRatio); err != nil {
		return Params{}, err
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
