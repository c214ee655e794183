package vibe

// randomNeighbor picks a uniform random neighbor of pixel i inside an
// (extent+1)x(extent+1) window centered on it. Both offsets are drawn by
// rejection sampling: a draw is repeated until it is nonzero and keeps the
// coordinate on the grid, horizontally first, then vertically. The two loops
// are independent, so the returned index is never i itself and never shares
// i's row or column. Fixed-seed reproducibility depends on this exact draw
// sequence.
func (e *Engine) randomNeighbor(i, extent int) int {
	x := i % e.p.Width
	y := i / e.p.Width

	var dx int
	for {
		dx = e.rng.Intn(extent+1) - extent/2
		if dx != 0 && x+dx >= 0 && x+dx < e.p.Width {
			break
		}
	}

	var dy int
	for {
		dy = e.rng.Intn(extent+1) - extent/2
		if dy != 0 && y+dy >= 0 && y+dy < e.p.Height {
			break
		}
	}

	return i + dy*e.p.Width + dx
}
