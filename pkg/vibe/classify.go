package vibe

// distSq returns the squared euclidean distance between two RGB triples.
// Comparing it against Radius*Radius is equivalent to comparing the exact (or
// floor-truncated) euclidean distance against Radius for 8-bit inputs, without
// the sqrt.
func distSq(r1, g1, b1, r2, g2, b2 int) int {
	dr := r1 - r2
	dg := g1 - g2
	db := b1 - b2
	return dr*dr + dg*dg + db*db
}

// isBackground reports whether the observed value (r,g,b) at pixel index i is
// consistent with the background model: at least Matches of the stored
// samples lie strictly within Radius of it. The slot scan is sequential and
// exits as soon as the threshold is reached.
func (e *Engine) isBackground(i, r, g, b int) bool {
	base := i * e.p.Samples * 3
	r2 := e.p.Radius * e.p.Radius
	hits := 0
	for s := 0; s < e.p.Samples; s++ {
		o := base + s*3
		if distSq(r, g, b, int(e.samples[o]), int(e.samples[o+1]), int(e.samples[o+2])) < r2 {
			hits++
			if hits >= e.p.Matches {
				return true
			}
		}
	}
	return false
}
