// Package wfc implements discrete Wave Function Collapse over D-dimensional
// integer grids.
//
// What:
//
//   - Pattern[V] is the superposition state of one cell: the pattern ids it may
//     still become, its fixed coordinates and the shared compat.Store.
//   - Engine[V] owns a dense grid of Patterns and the frontier of cells not yet
//     determined, and advances the grid one collapse+propagate step at a time.
//   - The engine is generic over the coordinate type (vec.Vec2, vec.Vec3), so a
//     single algorithm serves every dimensionality.
//
// Algorithm (one Iterate call):
//
//  1. Select: scan the frontier for the minimum entropy (|possibilities|-1).
//     A strictly smaller value resets the candidate list, an equal value
//     extends it; the cell is drawn uniformly among the candidates.
//  2. Collapse: reduce the selected cell to one possibility drawn uniformly.
//  3. Propagate: depth-first over a work stack. For each popped cell and each
//     in-bounds direction d whose neighbor is still on the frontier, constrain
//     the neighbor with the union of values the cell admits on d. A neighbor
//     that lost possibilities is pushed (once) and, if its entropy reached 0,
//     leaves the frontier and is reported.
//  4. Return every coordinate determined during the step, selected cell first.
//
// Contradictions:
//
// A cell constrained down to zero possibilities has entropy 0 like a resolved
// cell and leaves the frontier the same way; generation continues. State
// reports it as Contradiction, Contradictions lists it, and
// Options.FailOnContradiction turns it into ErrContradiction. There is no
// backtracking.
//
// Determinism:
//
// All randomness comes from Options.Rand, or from a math/rand source seeded
// with Options.Seed (0 selects a fixed default seed). The same store, extents,
// options and seed always produce the same grid.
//
// Complexity:
//
//   - New:     O(C×N) for C cells and N patterns.
//   - Iterate: O(C) selection + O(P×D×N×K) propagation over P touched cells.
//
// Concurrency:
//
// An Engine is not safe for concurrent use. Independent engines may share one
// compat.Store, which is read-only.
package wfc
