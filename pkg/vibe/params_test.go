package vibe

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDefaultParamsValidate(t *testing.T) {
	c := qt.New(t)
	c.Assert(DefaultParams().Validate(), qt.IsNil)
}

func TestValidateRejectsBadValues(t *testing.T) {
	c := qt.New(t)
	cases := []func(*Params){
		func(p *Params) { p.Width = 1 },
		func(p *Params) { p.Height = 0 },
		func(p *Params) { p.Samples = 0 },
		func(p *Params) { p.Matches = 0 },
		func(p *Params) { p.Matches = p.Samples + 1 },
		func(p *Params) { p.Radius = 0 },
		func(p *Params) { p.Phi = 0 },
		func(p *Params) { p.ImmediateExtent = 1 },
		func(p *Params) { p.ExtendedExtent = 0 },
		func(p *Params) { p.ReinitRatio = 0 },
		func(p *Params) { p.ReinitRatio = 1.5 },
		func(p *Params) { p.MaxChannel = 65535 },
	}
	for n, mutate := range cases {
		p := DefaultParams()
		mutate(&p)
		c.Assert(p.Validate(), qt.IsNotNil, qt.Commentf("case %d", n))
	}
}

func TestFromEnvOverrides(t *testing.T) {
	c := qt.New(t)
	t.Setenv("VSEG_WIDTH", "64")
	t.Setenv("VSEG_HEIGHT", "48")
	t.Setenv("VSEG_RADIUS", "30")
	t.Setenv("VSEG_REINIT_RATIO", "0.75")

	p, err := FromEnv(DefaultParams())
	c.Assert(err, qt.IsNil)
	c.Assert(p.Width, qt.Equals, 64)
	c.Assert(p.Height, qt.Equals, 48)
	c.Assert(p.Radius, qt.Equals, 30)
	c.Assert(p.ReinitRatio, qt.Equals, 0.75)
	// Untouched values keep their defaults.
	c.Assert(p.Samples, qt.Equals, 20)
	c.Assert(p.Phi, qt.Equals, 16)
}

func TestFromEnvRejectsMalformedValues(t *testing.T) {
	c := qt.New(t)
	t.Setenv("VSEG_PHI", "often")
	_, err := FromEnv(DefaultParams())
	c.Assert(err, qt.IsNotNil)
}

func TestFromEnvRejectsInvalidCombination(t *testing.T) {
	c := qt.New(t)
	t.Setenv("VSEG_MATCHES", "21")
	_, err := FromEnv(DefaultParams())
	c.Assert(err, qt.IsNotNil)
}
