package vec

import "fmt"

// Vec3 is a 3-dimensional integer vector (X, Y, Z).
type Vec3 [3]int

// Named Vec3 values. Y points up, Z points towards the viewer.
var (
	Zero3    = Vec3{0, 0, 0}
	One3     = Vec3{1, 1, 1}
	Right3   = Vec3{1, 0, 0}
	Left3    = Vec3{-1, 0, 0}
	Up3      = Vec3{0, 1, 0}
	Down3    = Vec3{0, -1, 0}
	Forward3 = Vec3{0, 0, -1}
	Back3    = Vec3{0, 0, 1}
)

// V3 builds a Vec3.
func V3(x, y, z int) Vec3 { return Vec3{x, y, z} }

// Dim returns 3.
func (v Vec3) Dim() int { return 3 }

// At returns component i (0 for X, 1 for Y, 2 for Z).
func (v Vec3) At(i int) int { return v[i] }

// With returns a copy of v with component i set to c.
func (v Vec3) With(i, c int) Vec3 {
	v[i] = c
	return v
}

// X returns the first component.
func (v Vec3) X() int { return v[0] }

// Y returns the second component.
func (v Vec3) Y() int { return v[1] }

// Z returns the third component.
func (v Vec3) Z() int { return v[2] }

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Scale returns v*k.
func (v Vec3) Scale(k int) Vec3 { return Vec3{v[0] * k, v[1] * k, v[2] * k} }

// Abs returns v with every component replaced by its absolute value.
func (v Vec3) Abs() Vec3 { return Vec3{abs(v[0]), abs(v[1]), abs(v[2])} }

// Sign returns v with every component replaced by -1, 0 or 1.
func (v Vec3) Sign() Vec3 { return Vec3{sign(v[0]), sign(v[1]), sign(v[2])} }

// Clamp clamps each component of v between the matching components of lo and hi.
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{clamp(v[0], lo[0], hi[0]), clamp(v[1], lo[1], hi[1]), clamp(v[2], lo[2], hi[2])}
}

// LengthSquared returns x²+y²+z².
func (v Vec3) LengthSquared() int { return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] }

// String formats v as "(x, y, z)".
func (v Vec3) String() string { return fmt.Sprintf("(%d, %d, %d)", v[0], v[1], v[2]) }
