package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

// layer is one W×H plane of glyphs.
type layer struct {
	glyph [][]rune
	vert  [][]bool
}

func newLayer(w, h int) layer {
	l := layer{glyph: make([][]rune, h), vert: make([][]bool, h)}
	for y := 0; y < h; y++ {
		l.glyph[y] = []rune(strings.Repeat(string(Blank), w))
		l.vert[y] = make([]bool, w)
	}

	return l
}

// write appends the layer to b, one line per row. With marks, every glyph is
// followed by Vertical or a space.
func (l *layer) write(b *strings.Builder, color, marks bool) {
	for y, row := range l.glyph {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, r := range row {
			if color && r != Blank {
				b.WriteString(style(r).Render(string(r)))
			} else {
				b.WriteRune(r)
			}
			if !marks {
				continue
			}
			if l.vert[y][x] {
				b.WriteRune(Vertical)
			} else {
				b.WriteRune(Blank)
			}
		}
	}
}

// Text2D renders 2D snapshots as box-drawing text.
type Text2D struct {
	arms  *armTable
	opts  options
	ext   vec.Vec2
	plane *layer
}

// NewText2D builds a renderer for the patterns of a 2D store.
// Returns ErrNilStore or ErrDimension.
func NewText2D(store *compat.Store, opts ...Option) (*Text2D, error) {
	arms, err := newArmTable(store, 2)
	if err != nil {
		return nil, err
	}
	t := &Text2D{arms: arms}
	for _, opt := range opts {
		opt(&t.opts)
	}

	return t, nil
}

// Render implements Renderer.
func (t *Text2D) Render(snap *wfc.Snapshot[vec.Vec2], coords []vec.Vec2) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	if t.plane == nil || snap.Extents() != t.ext {
		t.ext = snap.Extents()
		l := newLayer(t.ext.X(), t.ext.Y())
		t.plane = &l
		coords = nil
	}

	if coords == nil {
		for _, c := range snap.Cells() {
			t.draw(c)
		}
		return nil
	}
	for _, c := range coords {
		if cell, ok := snap.At(c); ok {
			t.draw(cell)
		}
	}

	return nil
}

func (t *Text2D) draw(c wfc.Cell[vec.Vec2]) {
	r, _ := t.arms.cell(c.Status, c.State)
	t.plane.glyph[c.Coord.Y()][c.Coord.X()] = r
}

// Reset implements Renderer.
func (t *Text2D) Reset() {
	t.plane = nil
	t.ext = vec.Vec2{}
}

// Glyph returns the glyph drawn at c, or Blank.
func (t *Text2D) Glyph(c vec.Vec2) rune {
	if t.plane == nil || c.X() < 0 || c.Y() < 0 || c.X() >= t.ext.X() || c.Y() >= t.ext.Y() {
		return Blank
	}

	return t.plane.glyph[c.Y()][c.X()]
}

// String returns the drawing, one line per row, without a trailing newline.
func (t *Text2D) String() string {
	if t.plane == nil {
		return ""
	}
	var b strings.Builder
	t.plane.write(&b, t.opts.color, false)

	return b.String()
}

// Text3D renders 3D snapshots layer by layer along Z.
type Text3D struct {
	arms   *armTable
	opts   options
	ext    vec.Vec3
	layers []layer
}

// NewText3D builds a renderer for the patterns of a 3D store.
// Returns ErrNilStore or ErrDimension.
func NewText3D(store *compat.Store, opts ...Option) (*Text3D, error) {
	arms, err := newArmTable(store, 3)
	if err != nil {
		return nil, err
	}
	t := &Text3D{arms: arms}
	for _, opt := range opts {
		opt(&t.opts)
	}

	return t, nil
}

// Render implements Renderer.
func (t *Text3D) Render(snap *wfc.Snapshot[vec.Vec3], coords []vec.Vec3) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	if t.layers == nil || snap.Extents() != t.ext {
		t.ext = snap.Extents()
		t.layers = make([]layer, t.ext.Z())
		for z := range t.layers {
			t.layers[z] = newLayer(t.ext.X(), t.ext.Y())
		}
		coords = nil
	}

	if coords == nil {
		for _, c := range snap.Cells() {
			t.draw(c)
		}
		return nil
	}
	for _, c := range coords {
		if cell, ok := snap.At(c); ok {
			t.draw(cell)
		}
	}

	return nil
}

func (t *Text3D) draw(c wfc.Cell[vec.Vec3]) {
	r, v := t.arms.cell(c.Status, c.State)
	l := &t.layers[c.Coord.Z()]
	l.glyph[c.Coord.Y()][c.Coord.X()] = r
	l.vert[c.Coord.Y()][c.Coord.X()] = v
}

// Reset implements Renderer.
func (t *Text3D) Reset() {
	t.layers = nil
	t.ext = vec.Vec3{}
}

// Layer returns the drawing of layer z without header, or "" when out of range.
func (t *Text3D) Layer(z int) string {
	if z < 0 || z >= len(t.layers) {
		return ""
	}
	var b strings.Builder
	t.layers[z].write(&b, t.opts.color, true)

	return b.String()
}

// String returns every layer under a "z=N" header, separated by blank lines.
func (t *Text3D) String() string {
	var b strings.Builder
	for z := range t.layers {
		if z > 0 {
			b.WriteString("\n\n")
		}
		header := "z=" + strconv.Itoa(z)
		if t.opts.color {
			header = layerStyle.Render(header)
		}
		b.WriteString(header)
		b.WriteByte('\n')
		t.layers[z].write(&b, t.opts.color, true)
	}

	return b.String()
}

var (
	_ Renderer[vec.Vec2] = (*Text2D)(nil)
	_ Renderer[vec.Vec3] = (*Text3D)(nil)
)
