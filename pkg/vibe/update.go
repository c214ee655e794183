package vibe

// replaceOwnSample overwrites a uniformly chosen sample slot of pixel i with
// the pixel's current value.
func (e *Engine) replaceOwnSample(i int) {
	s := e.rng.Intn(e.p.Samples)
	o := (i*e.p.Samples + s) * 3
	copy(e.samples[o:o+3], e.cur[i*3:i*3+3])
}

// replaceNeighborSample overwrites a uniformly chosen sample slot of a
// uniformly chosen neighbor of pixel i (within the given extent) with pixel
// i's current value. The slot is drawn before the neighbor, matching the
// engine's documented draw order.
func (e *Engine) replaceNeighborSample(i, extent int) {
	s := e.rng.Intn(e.p.Samples)
	n := e.randomNeighbor(i, extent)
	o := (n*e.p.Samples + s) * 3
	copy(e.samples[o:o+3], e.cur[i*3:i*3+3])
}

// updateBackground applies the background-branch policy for pixel i: an
// independent 1/Phi chance of an own-sample update, then a 1/Phi chance of an
// extended-neighbor update, falling through to a 1/Phi chance of an
// immediate-neighbor update only when the extended coin fails.
func (e *Engine) updateBackground(i int) {
	if e.rng.Intn(e.p.Phi) == 0 {
		e.replaceOwnSample(i)
	}
	if e.rng.Intn(e.p.Phi) == 0 {
		e.replaceNeighborSample(i, e.p.ExtendedExtent)
	} else if e.rng.Intn(e.p.Phi) == 0 {
		e.replaceNeighborSample(i, e.p.ImmediateExtent)
	}
}

// blobInterior reports whether all four 4-neighbors of pixel i currently read
// as foreground in the mask. Off-grid neighbors read as background. Bits for
// already-visited neighbors are from the frame in progress; the rest still
// hold the previous frame's classification, which is what keeps the interior
// of a persistent blob suppressed from one frame to the next.
func (e *Engine) blobInterior(i int) bool {
	w, h := e.p.Width, e.p.Height
	x := i % w

	up := i-w >= 0 && e.mask[i-w] == 1
	right := x+1 < w && e.mask[i+1] == 1
	down := i+w < w*h && e.mask[i+w] == 1
	left := x-1 >= 0 && e.mask[i-1] == 1

	return up && right && down && left
}

// updateForeground applies the foreground-branch policy for pixel i: a 1/Phi
// chance of an own-sample update, taken only when the pixel's value has been
// stable since the previous frame (temporal-coherence gate) and the pixel is
// not buried inside a coherent foreground blob (blob-interior gate).
// (pr,pg,pb) is the pixel's value in the previous frame. The coin is drawn
// before the gates are consulted; the draw order is fixed.
func (e *Engine) updateForeground(i, r, g, b, pr, pg, pb int) {
	coin := e.rng.Intn(e.p.Phi) == 0
	if coin && distSq(r, g, b, pr, pg, pb) < e.p.Radius*e.p.Radius && !e.blobInterior(i) {
		e.replaceOwnSample(i)
	}
}
