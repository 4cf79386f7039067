// Package space implements Funge-Space: the sparse, lazily-allocated 2D
// grid a Befunge-98 program lives in, plus the bounding-box bookkeeping
// that drives wrap-around movement.
package space

import (
	"math"
	"strings"

	"mycon/internal/data"
)

// Space is the two-dimensional grid addressable by a running program.
// It is logically a total function Point -> Value defaulting to ' ' (32).
type Space struct {
	tree   tree
	bounds bounds
}

// New creates an empty Space.
func New() *Space {
	return &Space{bounds: newBounds()}
}

// Read creates a Space initialized from source text. Lines are split on
// '\n'; within a line each rune becomes a cell left to right starting at
// x=0. Form feed and carriage return are both skipped without advancing
// the column.
func Read(code string) *Space {
	s := New()

	lines := strings.Split(code, "\n")
	for y, line := range lines {
		x := int32(0)
		for _, r := range line {
			if r == '\x0C' || r == '\r' {
				continue
			}
			s.Set(data.Point{X: x, Y: int32(y)}, data.Value(r))
			x++
		}
	}

	return s
}

// Get returns the cell stored at p, or 32 (' ') if it was never written.
func (s *Space) Get(p data.Point) data.Value {
	return s.tree.get(p.X, p.Y)
}

// Set stores v at p and updates the bounding box. Writing 32 (' ') to a
// cell that has never been written is a no-op.
func (s *Space) Set(p data.Point, v data.Value) {
	old := s.tree.get(p.X, p.Y)
	s.tree.set(p.X, p.Y, v)
	s.bounds.update(p.X, p.Y, old, v)
}

// Min returns the northwest corner of the bounding box of non-space
// cells, or (0, 0) if the Space is entirely empty.
func (s *Space) Min() (int32, int32) {
	return s.bounds.minX, s.bounds.minY
}

// Max returns the southeast corner of the bounding box of non-space
// cells, or (0, 0) if the Space is entirely empty.
func (s *Space) Max() (int32, int32) {
	return s.bounds.maxX, s.bounds.maxY
}

// IsLast reports whether stepping p by d would leave the bounding box,
// i.e. whether the next step will wrap.
func (s *Space) IsLast(p data.Point, d data.Delta) bool {
	return s.isLastX(p.X, d.DX) || s.isLastY(p.Y, d.DY)
}

func (s *Space) isLastX(x, dx int32) bool {
	if dx >= 0 {
		return x > s.bounds.maxX-dx
	}
	return x < s.bounds.minX-dx
}

func (s *Space) isLastY(y, dy int32) bool {
	if dy >= 0 {
		return y > s.bounds.maxY-dy
	}
	return y < s.bounds.minY-dy
}

// NewPosition computes the point an IP moves to after stepping from p by
// d, wrapping to the point of reentry on the opposite side of the
// bounding box when the straightforward step would leave it.
func (s *Space) NewPosition(p data.Point, d data.Delta) data.Point {
	lastX, lastY := s.isLastX(p.X, d.DX), s.isLastY(p.Y, d.DY)

	if !lastX && !lastY {
		return p.Add(d)
	}

	nx := stepsToEdge(p.X, d.DX, s.bounds.minX, s.bounds.maxX)
	ny := stepsToEdge(p.Y, d.DY, s.bounds.minY, s.bounds.maxY)

	n := nx
	if ny < n {
		n = ny
	}

	return p.Sub(d.Scale(n))
}

func stepsToEdge(v, d, min, max int32) int32 {
	if d == 0 {
		return math.MaxInt32
	}
	if d >= 0 {
		return (v - min) / d
	}
	return (v - max) / d
}

// bounds tracks the extremes of the currently non-empty cell set, per
// axis, via a count of non-space cells at each coordinate. Min/max are
// recomputed whenever the extreme coordinate's count drops to zero, so
// the box can shrink as well as grow (the policy spec.md §3/§9 prefers).
type bounds struct {
	minX, minY, maxX, maxY int32
	total                  int32 // number of currently non-space cells
	nonEmptyX, nonEmptyY   map[int32]int32
}

func newBounds() bounds {
	return bounds{
		nonEmptyX: make(map[int32]int32),
		nonEmptyY: make(map[int32]int32),
	}
}

func (b *bounds) update(x, y int32, old, v data.Value) {
	switch {
	case old == data.Space && v != data.Space:
		b.increment(x, y)
	case old != data.Space && v == data.Space:
		b.decrement(x, y)
	}
}

func (b *bounds) increment(x, y int32) {
	wasEmpty := b.total == 0

	b.nonEmptyX[x]++
	b.nonEmptyY[y]++
	b.total++

	if wasEmpty {
		b.minX, b.maxX = x, x
		b.minY, b.maxY = y, y
		return
	}

	if x < b.minX {
		b.minX = x
	}
	if x > b.maxX {
		b.maxX = x
	}
	if y < b.minY {
		b.minY = y
	}
	if y > b.maxY {
		b.maxY = y
	}
}

func (b *bounds) decrement(x, y int32) {
	b.nonEmptyX[x]--
	b.nonEmptyY[y]--
	b.total--

	if b.total == 0 {
		b.minX, b.maxX, b.minY, b.maxY = 0, 0, 0, 0
		return
	}

	if b.nonEmptyX[x] == 0 && (x == b.minX || x == b.maxX) {
		b.rescanX()
	}
	if b.nonEmptyY[y] == 0 && (y == b.minY || y == b.maxY) {
		b.rescanY()
	}
}

func (b *bounds) rescanX() {
	min, max, any := int32(0), int32(0), false
	for x, n := range b.nonEmptyX {
		if n <= 0 {
			continue
		}
		if !any || x < min {
			min = x
		}
		if !any || x > max {
			max = x
		}
		any = true
	}
	b.minX, b.maxX = min, max
}

func (b *bounds) rescanY() {
	min, max, any := int32(0), int32(0), false
	for y, n := range b.nonEmptyY {
		if n <= 0 {
			continue
		}
		if !any || y < min {
			min = y
		}
		if !any || y > max {
			max = y
		}
		any = true
	}
	b.minY, b.maxY = min, max
}
