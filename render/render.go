package render

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/wfc/axis"
	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

var (
	// ErrNilStore indicates a nil *compat.Store.
	ErrNilStore = errors.New("render: compatibility store is nil")
	// ErrNilSnapshot indicates a nil *wfc.Snapshot.
	ErrNilSnapshot = errors.New("render: snapshot is nil")
	// ErrDimension indicates a store or snapshot of the wrong dimension.
	ErrDimension = errors.New("render: unsupported dimension")
)

// Renderer consumes the grid after each generation step.
type Renderer[V vec.Vector[V]] interface {
	// Render redraws coords from snap; nil coords redraws the whole grid.
	Render(snap *wfc.Snapshot[V], coords []V) error
	// Reset forgets everything drawn so far.
	Reset()
}

// Glyphs shown for cells that are not resolved.
const (
	Blank         = ' '
	Superposed    = '?'
	Contradiction = '×'
	Empty         = '·'
	Vertical      = '⇅'
)

// Arm bits of the planar glyph table.
const (
	east  = 1 << iota // PosX
	west              // NegX
	south             // PosY, y grows downwards
	north             // NegY
)

var planar = [16]rune{
	0:                           Empty,
	east:                        '╶',
	west:                        '╴',
	east | west:                 '─',
	south:                       '╷',
	east | south:                '┌',
	west | south:                '┐',
	east | west | south:         '┬',
	north:                       '╵',
	east | north:                '└',
	west | north:                '┘',
	east | west | north:         '┴',
	north | south:               '│',
	east | north | south:        '├',
	west | north | south:        '┤',
	east | west | north | south: '┼',
}

// Option configures a text renderer.
type Option func(*options)

type options struct {
	color bool
}

// WithColor enables lipgloss styling of resolved, superposed and contradicted
// glyphs. Terminal color support is detected by lipgloss.
func WithColor() Option {
	return func(o *options) { o.color = true }
}

var (
	resolvedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	emptyStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	superposedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	contradictionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	layerStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
)

// style returns the lipgloss style for a glyph.
func style(r rune) lipgloss.Style {
	switch r {
	case Superposed:
		return superposedStyle
	case Contradiction:
		return contradictionStyle
	case Empty:
		return emptyStyle
	default:
		return resolvedStyle
	}
}

// armTable precomputes, per pattern id, the planar glyph and whether the
// pattern has an arm along component 2.
type armTable struct {
	glyph []rune
	vert  []bool
}

func newArmTable(store *compat.Store, dim int) (*armTable, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if store.Dimension() != dim {
		return nil, fmt.Errorf("%w: %dD store for a %dD renderer", ErrDimension, store.Dimension(), dim)
	}

	t := &armTable{glyph: make([]rune, store.Len()), vert: make([]bool, store.Len())}
	bits := []struct {
		a   axis.Axis
		bit int
	}{{axis.PosX, east}, {axis.NegX, west}, {axis.PosY, south}, {axis.NegY, north}}
	for _, id := range store.PatternIDs() {
		mask := 0
		for _, b := range bits {
			st, err := store.StateOnAxis(id, b.a)
			if err != nil {
				return nil, err
			}
			if st != 0 {
				mask |= b.bit
			}
		}
		t.glyph[id] = planar[mask]

		if dim == 3 {
			for _, a := range []axis.Axis{axis.PosZ, axis.NegZ} {
				st, err := store.StateOnAxis(id, a)
				if err != nil {
					return nil, err
				}
				t.vert[id] = t.vert[id] || st != 0
			}
		}
	}

	return t, nil
}

// cell returns the glyph of one snapshot cell and whether it reaches another layer.
func (t *armTable) cell(status wfc.Status, state int) (rune, bool) {
	switch status {
	case wfc.Superposed:
		return Superposed, false
	case wfc.Contradiction:
		return Contradiction, false
	}
	if state < 0 || state >= len(t.glyph) {
		return Contradiction, false
	}

	return t.glyph[state], t.vert[state]
}
