// Package render turns wfc snapshots into text.
//
// What:
//
//   - Renderer[V] is what a generation loop feeds after every step: the fresh
//     snapshot plus the coordinates that changed. Reset drops all state.
//   - Text2D draws a 2D grid with one box-drawing glyph per cell, picked from
//     the cell's arms (axes whose state is non-zero): "─" joins NegX and PosX,
//     "┼" joins all four, "·" is a resolved cell without arms. Superposed
//     cells show "?", contradictions "×", cells never rendered " ".
//   - Text3D draws a 3D grid one Z layer at a time with the same glyphs,
//     followed by "⇅" for cells that also reach a neighboring layer.
//
// Rendering is incremental: only the given coordinates are redrawn. Passing
// nil coordinates, or a snapshot with new extents, redraws everything.
//
// Options:
//
//   - WithColor: style glyphs per status with lipgloss.
//
// Errors:
//
//   - ErrNilStore, ErrNilSnapshot: missing input.
//   - ErrDimension: a 2D renderer fed a 3D store, or the other way round.
package render
