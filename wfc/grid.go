package wfc

import (
	"github.com/katalvlaran/wfc/axis"
	"github.com/katalvlaran/wfc/vec"
)

// layout maps D-dimensional coordinates to row-major indices (component 0
// varies fastest) and back. It is immutable once built.
type layout[V vec.Vector[V]] struct {
	extents V
	strides []int
	size    int
	dirs    []V // unit directions in axis.All order
}

func newLayout[V vec.Vector[V]](extents V) layout[V] {
	d := extents.Dim()
	strides := make([]int, d)
	size := 1
	for i := 0; i < d; i++ {
		strides[i] = size
		size *= extents.At(i)
	}
	dirs := make([]V, 0, 2*d)
	for _, a := range axis.All(d) {
		dirs = append(dirs, axis.Vector[V](a))
	}

	return layout[V]{extents: extents, strides: strides, size: size, dirs: dirs}
}

// inBounds reports whether every component of c lies in [0, extent).
// Complexity: O(D).
func (l *layout[V]) inBounds(c V) bool {
	for i := 0; i < c.Dim(); i++ {
		if v := c.At(i); v < 0 || v >= l.extents.At(i) {
			return false
		}
	}

	return true
}

// index maps an in-bounds coordinate to its row-major index.
// Complexity: O(D).
func (l *layout[V]) index(c V) int {
	idx := 0
	for i, s := range l.strides {
		idx += c.At(i) * s
	}

	return idx
}

// coord converts a row-major index back to a coordinate.
// Complexity: O(D).
func (l *layout[V]) coord(idx int) V {
	var c V
	for i := range l.strides {
		e := l.extents.At(i)
		c = c.With(i, idx%e)
		idx /= e
	}

	return c
}

// onBoundary reports, for component i, whether c touches the low and the high face.
func (l *layout[V]) onBoundary(c V, i int) (low, high bool) {
	return c.At(i) == 0, c.At(i) == l.extents.At(i)-1
}
