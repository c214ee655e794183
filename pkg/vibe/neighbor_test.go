package vibe

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRandomNeighborStaysOnGrid(t *testing.T) {
	c := qt.New(t)
	p := DefaultParams()
	p.Width = 6
	p.Height = 5
	eng, err := New(p, 123)
	c.Assert(err, qt.IsNil)

	// Corners, edges, and an interior pixel.
	indices := []int{0, 5, 24, 29, 2, 12, 14}
	for _, extent := range []int{2, 4} {
		for _, i := range indices {
			x, y := i%p.Width, i/p.Width
			for draw := 0; draw < 500; draw++ {
				n := eng.randomNeighbor(i, extent)
				c.Assert(n != i, qt.IsTrue)
				nx, ny := n%p.Width, n/p.Width
				dx, dy := nx-x, ny-y
				c.Assert(dx != 0, qt.IsTrue, qt.Commentf("extent %d pixel %d", extent, i))
				c.Assert(dy != 0, qt.IsTrue, qt.Commentf("extent %d pixel %d", extent, i))
				c.Assert(dx >= -extent/2 && dx <= extent/2, qt.IsTrue)
				c.Assert(dy >= -extent/2 && dy <= extent/2, qt.IsTrue)
				c.Assert(nx >= 0 && nx < p.Width, qt.IsTrue)
				c.Assert(ny >= 0 && ny < p.Height, qt.IsTrue)
			}
		}
	}
}

func TestRandomNeighborImmediateIsDiagonal(t *testing.T) {
	c := qt.New(t)
	p := DefaultParams()
	p.Width = 5
	p.Height = 5
	eng, err := New(p, 7)
	c.Assert(err, qt.IsNil)

	// From the center of a 5x5 grid, extent 2 must reach exactly the four
	// diagonal neighbors: both offsets are nonzero and have magnitude 1.
	center := 2*5 + 2
	seen := map[int]bool{}
	for draw := 0; draw < 2000; draw++ {
		seen[eng.randomNeighbor(center, 2)] = true
	}
	want := []int{center - 5 - 1, center - 5 + 1, center + 5 - 1, center + 5 + 1}
	c.Assert(len(seen), qt.Equals, len(want))
	for _, n := range want {
		c.Assert(seen[n], qt.IsTrue, qt.Commentf("neighbor %d never drawn", n))
	}
}

func TestRandomNeighborCornerExtended(t *testing.T) {
	c := qt.New(t)
	p := DefaultParams()
	p.Width = 4
	p.Height = 4
	eng, err := New(p, 99)
	c.Assert(err, qt.IsNil)

	// From corner (0,0) with extent 4, only positive offsets survive the
	// grid bound, so every draw lands in {1,2} x {1,2}.
	for draw := 0; draw < 1000; draw++ {
		n := eng.randomNeighbor(0, 4)
		x, y := n%4, n/4
		c.Assert(x >= 1 && x <= 2, qt.IsTrue)
		c.Assert(y >= 1 && y <= 2, qt.IsTrue)
	}
}
