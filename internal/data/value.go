// Package data holds the arithmetic primitives shared by every other
// mycon package: the universal cell value, 2D points, and movement deltas.
package data

// Value is the universal cell and stack element type: a signed 32-bit
// integer. Arithmetic on Value wraps using two's-complement semantics,
// matching Go's native int32 overflow behavior.
type Value = int32

// Space is the sentinel "empty cell" value, the ASCII code for ' '.
const Space Value = 32

// Point is a location in Funge-Space.
type Point struct {
	X, Y int32
}

// Add returns p shifted by d.
func (p Point) Add(d Delta) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Sub returns p shifted by the reverse of d.
func (p Point) Sub(d Delta) Point {
	return Point{X: p.X - d.DX, Y: p.Y - d.DY}
}

// Delta is a movement vector.
type Delta struct {
	DX, DY int32
}

// Add returns the componentwise sum of two deltas.
func (d Delta) Add(o Delta) Delta {
	return Delta{DX: d.DX + o.DX, DY: d.DY + o.DY}
}

// Scale returns d scaled by n, wrapping on overflow.
func (d Delta) Scale(n int32) Delta {
	return Delta{DX: d.DX * n, DY: d.DY * n}
}

// Reverse returns the negated delta.
func (d Delta) Reverse() Delta {
	return Delta{DX: -d.DX, DY: -d.DY}
}

// RotateLeft returns the delta rotated 90 degrees counterclockwise:
// (dx, dy) -> (dy, -dx).
func (d Delta) RotateLeft() Delta {
	return Delta{DX: d.DY, DY: -d.DX}
}

// RotateRight returns the delta rotated 90 degrees clockwise:
// (dx, dy) -> (-dy, dx).
func (d Delta) RotateRight() Delta {
	return Delta{DX: -d.DY, DY: d.DX}
}

// Unit directions, in the order Funge-98 assigns them to '>', 'v', '<', '^'.
var (
	East  = Delta{DX: 1, DY: 0}
	South = Delta{DX: 0, DY: 1}
	West  = Delta{DX: -1, DY: 0}
	North = Delta{DX: 0, DY: -1}
)
