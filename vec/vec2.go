package vec

import "fmt"

// Vec2 is a 2-dimensional integer vector (X, Y).
type Vec2 [2]int

// Named Vec2 values.
var (
	Zero2  = Vec2{0, 0}
	One2   = Vec2{1, 1}
	Right2 = Vec2{1, 0}
	Left2  = Vec2{-1, 0}
	Up2    = Vec2{0, -1}
	Down2  = Vec2{0, 1}
)

// V2 builds a Vec2.
func V2(x, y int) Vec2 { return Vec2{x, y} }

// Dim returns 2.
func (v Vec2) Dim() int { return 2 }

// At returns component i (0 for X, 1 for Y).
func (v Vec2) At(i int) int { return v[i] }

// With returns a copy of v with component i set to c.
func (v Vec2) With(i, c int) Vec2 {
	v[i] = c
	return v
}

// X returns the first component.
func (v Vec2) X() int { return v[0] }

// Y returns the second component.
func (v Vec2) Y() int { return v[1] }

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v[0] + o[0], v[1] + o[1]} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v[0] - o[0], v[1] - o[1]} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v[0], -v[1]} }

// Scale returns v*k.
func (v Vec2) Scale(k int) Vec2 { return Vec2{v[0] * k, v[1] * k} }

// Abs returns v with every component replaced by its absolute value.
func (v Vec2) Abs() Vec2 { return Vec2{abs(v[0]), abs(v[1])} }

// Sign returns v with every component replaced by -1, 0 or 1.
func (v Vec2) Sign() Vec2 { return Vec2{sign(v[0]), sign(v[1])} }

// Clamp clamps each component of v between the matching components of lo and hi.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{clamp(v[0], lo[0], hi[0]), clamp(v[1], lo[1], hi[1])}
}

// LengthSquared returns x²+y².
func (v Vec2) LengthSquared() int { return v[0]*v[0] + v[1]*v[1] }

// String formats v as "(x, y)".
func (v Vec2) String() string { return fmt.Sprintf("(%d, %d)", v[0], v[1]) }
