package vibe

import (
	"math/rand"
)

// Engine is a ViBe background segmenter for a fixed-size frame sequence. It
// owns the current and previous frame buffers, the per-pixel sample model,
// the mask, and the random source; none of them are shared. The engine is
// single-threaded: one frame is processed to completion before the next is
// accepted, and pixels are visited in row-major order. With a fixed seed and
// a fixed frame sequence the mask sequence is bit-identical across runs.
type Engine struct {
	p   Params
	rng *rand.Rand

	cur     []uint8 // current frame, W*H RGB triples
	prev    []uint8 // previous frame, written back per pixel during the sweep
	samples []uint8 // sample model, (i*Samples+s)*3+c
	mask    Mask    // persists across frames; unvisited bits hold the prior classification

	ready bool
}

// New allocates an engine for the given parameters. The seed fully
// determines the engine's stochastic behavior; callers wanting
// non-reproducible runs should pass a wall-clock derived seed.
func New(p Params, seed int64) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := p.Width * p.Height
	return &Engine{
		p:       p,
		rng:     rand.New(rand.NewSource(seed)),
		cur:     make([]uint8, n*3),
		prev:    make([]uint8, n*3),
		samples: make([]uint8, n*p.Samples*3),
		mask:    make(Mask, n),
	}, nil
}

// Params returns the engine's configuration.
func (e *Engine) Params() Params { return e.p }

// Reset discards all model state and reseeds the random source. The next
// frame must go through InitFromFrame.
func (e *Engine) Reset(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
	for i := range e.cur {
		e.cur[i] = 0
		e.prev[i] = 0
	}
	for i := range e.samples {
		e.samples[i] = 0
	}
	for i := range e.mask {
		e.mask[i] = 0
	}
	e.ready = false
}

// seedModel populates every sample slot of every pixel with the value of a
// random extended-extent neighbor taken from the current frame, and seeds the
// previous-frame buffer equal to the current frame. The result is a fully
// populated, spatially coherent model.
func (e *Engine) seedModel() {
	n := e.p.Width * e.p.Height
	for i := 0; i < n; i++ {
		copy(e.prev[i*3:i*3+3], e.cur[i*3:i*3+3])
		for s := 0; s < e.p.Samples; s++ {
			src := e.randomNeighbor(i, e.p.ExtendedExtent)
			o := (i*e.p.Samples + s) * 3
			copy(e.samples[o:o+3], e.cur[src*3:src*3+3])
		}
	}
}

// step classifies pixel i against the model, records the mask bit, applies
// the update policy, and returns 1 if the pixel is foreground. The previous-
// frame buffer is read for the temporal gate and then overwritten with the
// current value, so by the end of the sweep it equals the current frame and
// each pixel's temporal gate compares against the frame before.
func (e *Engine) step(i int) int {
	o := i * 3
	r := int(e.cur[o])
	g := int(e.cur[o+1])
	b := int(e.cur[o+2])
	pr := int(e.prev[o])
	pg := int(e.prev[o+1])
	pb := int(e.prev[o+2])
	e.prev[o] = e.cur[o]
	e.prev[o+1] = e.cur[o+1]
	e.prev[o+2] = e.cur[o+2]

	if e.isBackground(i, r, g, b) {
		e.mask[i] = 0
		e.updateBackground(i)
		return 0
	}
	e.mask[i] = 1
	e.updateForeground(i, r, g, b, pr, pg, pb)
	return 1
}

// sweep runs the per-frame pass over the current frame and returns a copy of
// the resulting mask. When the foreground ratio exceeds ReinitRatio the model
// is rebuilt wholesale from the current frame; the mask is still the one
// computed during the sweep, so only subsequent frames see the fresh model.
func (e *Engine) sweep() Mask {
	n := e.p.Width * e.p.Height
	foreground := 0
	for i := 0; i < n; i++ {
		foreground += e.step(i)
	}
	if float64(foreground)/float64(n) > e.p.ReinitRatio {
		e.seedModel()
	}
	out := make(Mask, n)
	copy(out, e.mask)
	return out
}

// InitFromFrame accepts the first frame of a sequence: it seeds the sample
// model and the previous-frame buffer from it, then runs a normal
// classification sweep over the same frame. The returned mask is produced by
// the same path as every later frame, and the reinit policy applies to it.
func (e *Engine) InitFromFrame(f *Frame) (Mask, error) {
	if err := f.check(e.p.Width, e.p.Height); err != nil {
		return nil, err
	}
	copy(e.cur, f.Pix[:e.p.Width*e.p.Height*3])
	e.seedModel()
	e.ready = true
	return e.sweep(), nil
}

// ProcessFrame accepts a subsequent frame, returns its mask, and updates the
// model in place. The engine must have been initialized.
func (e *Engine) ProcessFrame(f *Frame) (Mask, error) {
	if !e.ready {
		return nil, ErrNotInitialized
	}
	if err := f.check(e.p.Width, e.p.Height); err != nil {
		return nil, err
	}
	copy(e.cur, f.Pix[:e.p.Width*e.p.Height*3])
	return e.sweep(), nil
}
