// Package axis encodes the 2×D unit directions of a D-dimensional integer
// lattice as small signed integers.
//
// Encoding:
//
//	Pos(i) =  1 << i      PosX =  1, PosY =  2, PosZ =  4
//	Neg(i) = ^(1 << i)    NegX = -2, NegY = -3, NegZ = -5
//	None   =  0
//
// Reversing a direction is a bitwise complement (^a), so no lookup table is
// needed to go from an axis to its opposite. The encoding supports up to
// MaxDimension dimensions.
package axis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/wfc/vec"
)

// MaxDimension is the highest lattice dimension the encoding supports.
const MaxDimension = 8

// Sentinel errors for axis parsing.
var (
	// ErrUnknownAxis indicates an axis name that does not denote any axis.
	ErrUnknownAxis = errors.New("axis: unknown axis name")
)

// Axis is one signed lattice direction. The zero value is None.
type Axis int16

// Named axes for the first three dimensions.
const (
	None Axis = 0
	PosX Axis = 1
	NegX Axis = ^PosX
	PosY Axis = 2
	NegY Axis = ^PosY
	PosZ Axis = 4
	NegZ Axis = ^PosZ
)

// letters names the first three components; higher components use their index.
var letters = [...]string{"X", "Y", "Z"}

// Pos returns the positive axis of component i.
func Pos(i int) Axis { return Axis(1 << i) }

// Neg returns the negative axis of component i.
func Neg(i int) Axis { return ^Axis(1 << i) }

// All returns the 2×dim axes of a dim-dimensional lattice in the order
// Pos(0), Neg(0), Pos(1), Neg(1), ...
func All(dim int) []Axis {
	out := make([]Axis, 0, 2*dim)
	for i := 0; i < dim; i++ {
		out = append(out, Pos(i), Neg(i))
	}

	return out
}

// FromVector returns the axis of a canonical unit direction.
//
// Components are scanned in order; the first non-zero component at index i
// yields Pos(i) when positive and Neg(i) when negative. The zero vector yields
// None. Vectors with several non-zero components are not valid directions:
// the first non-zero component decides.
func FromVector[V vec.Vector[V]](v V) Axis {
	for i := 0; i < v.Dim(); i++ {
		c := v.At(i)
		if c == 0 {
			continue
		}
		if c < 0 {
			return Neg(i)
		}

		return Pos(i)
	}

	return None
}

// Vector returns the unit vector of a. None yields the zero vector.
func Vector[V vec.Vector[V]](a Axis) V {
	var zero V
	if a == None {
		return zero
	}
	if a.Positive() {
		return zero.With(a.Index(), 1)
	}

	return zero.With(a.Index(), -1)
}

// Reverse returns the opposite direction. None reverses to ^0 (-1), which is
// not a valid axis; callers only reverse real directions.
func (a Axis) Reverse() Axis { return ^a }

// Positive reports whether a points along the positive half of its component.
func (a Axis) Positive() bool { return a > 0 }

// Index returns the component index of a (0 for X, 1 for Y, ...), or -1 for
// None and for values that are not a single-bit encoding.
func (a Axis) Index() int {
	b := a
	if b < 0 {
		b = ^b
	}
	if b == 0 || b&(b-1) != 0 {
		return -1
	}
	i := 0
	for b > 1 {
		b >>= 1
		i++
	}

	return i
}

// Valid reports whether a is one of the 2×dim axes of a dim-dimensional lattice.
func (a Axis) Valid(dim int) bool {
	i := a.Index()
	return i >= 0 && i < dim
}

// String returns the symbolic name: "PosX", "NegY", "Pos3", "None".
func (a Axis) String() string {
	if a == None {
		return "None"
	}
	i := a.Index()
	if i < 0 {
		return fmt.Sprintf("Axis(%d)", int16(a))
	}
	name := strconv.Itoa(i)
	if i < len(letters) {
		name = letters[i]
	}
	if a.Positive() {
		return "Pos" + name
	}

	return "Neg" + name
}

// Parse converts a symbolic axis name back into an Axis.
// Returns ErrUnknownAxis for names that do not follow the Pos*/Neg* scheme.
func Parse(name string) (Axis, error) {
	if name == "None" {
		return None, nil
	}
	var positive bool
	switch {
	case strings.HasPrefix(name, "Pos"):
		positive = true
	case strings.HasPrefix(name, "Neg"):
		positive = false
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
	}
	rest := name[3:]
	idx := -1
	for i, l := range letters {
		if rest == l {
			idx = i
		}
	}
	if idx < 0 {
		n, err := strconv.Atoi(rest)
		if err != nil || n < len(letters) || n >= MaxDimension {
			return None, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
		}
		idx = n
	}
	if positive {
		return Pos(idx), nil
	}

	return Neg(idx), nil
}

// MarshalText encodes a by name so axes can be JSON map keys.
func (a Axis) MarshalText() ([]byte, error) {
	if a != None && a.Index() < 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAxis, int16(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText decodes a name produced by MarshalText.
func (a *Axis) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}
