// Package analysis inspects finished (or partially finished) wfc grids.
//
// What:
//
//   - Verify re-checks every pair of adjacent resolved cells against the
//     compatibility store and reports each edge that fails, in both directions.
//   - Regions finds connected networks of resolved cells, linking two
//     neighbors when both carry a non-zero state on their shared edge (the
//     "arms" a renderer draws).
//   - Bridge computes the fewest unlinked edges to cross to join two regions
//     (0-1 BFS: moving along an arm costs 0, anything else costs 1).
//   - Summarize counts cells per status and resolved cells per pattern.
//
// Why:
//
//   - Regression checks: a sound generator never produces a Violation.
//   - Level design: count pipe networks, rooms or corridors, and measure how
//     far apart two of them are.
//
// Complexity:
//
//   - Verify:    O(C×D), Memory: O(V) for V violations.
//   - Regions:   O(C×D), Memory: O(C).
//   - Bridge:    O(C×D), Memory: O(C).
//   - Summarize: O(C),   Memory: O(N) for N distinct patterns.
//
// Errors:
//
//   - ErrNilSnapshot, ErrNilStore: missing input.
//   - ErrDimensionMismatch: snapshot and store disagree on D.
//   - ErrRegionIndex: requested region index out of range.
//   - ErrNoPath: no path exists between the two regions.
package analysis
