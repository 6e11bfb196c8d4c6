package vec

// Vector is the constraint satisfied by Vec2 and Vec3.
//
// With returns a copy with component i replaced; it is how generic code builds
// vectors without knowing their concrete size (start from the zero value).
type Vector[V any] interface {
	comparable
	Dim() int
	At(i int) int
	With(i, v int) V
	Add(o V) V
	Sub(o V) V
	Neg() V
}

// Unit returns the canonical unit vector along component i.
// sign < 0 yields the negative direction, anything else the positive one.
func Unit[V Vector[V]](i, sign int) V {
	var zero V
	if sign < 0 {
		return zero.With(i, -1)
	}

	return zero.With(i, 1)
}

// Product returns the product of all components of v, i.e. the number of
// cells in a grid with extents v. Returns 0 if any component is <= 0.
func Product[V Vector[V]](v V) int {
	n := 1
	for i := 0; i < v.Dim(); i++ {
		c := v.At(i)
		if c <= 0 {
			return 0
		}
		n *= c
	}

	return n
}

// Less orders vectors lexicographically from the highest component down,
// which matches the row-major order used by grids (x varies fastest).
func Less[V Vector[V]](a, b V) bool {
	for i := a.Dim() - 1; i >= 0; i-- {
		if a.At(i) != b.At(i) {
			return a.At(i) < b.At(i)
		}
	}

	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
