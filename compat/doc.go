// Package compat holds the pattern compatibility data that drives wave
// function collapse: which neighbor group every (pattern, axis) pair belongs
// to, and which values each neighbor group admits across the shared edge.
//
// What:
//
//   - Store is an immutable, validated table for one lattice dimensionality.
//   - Load reads the two JSON files of a tile set; when the pattern-axis file
//     is missing it synthesizes the exhaustive 4^D "arm present/absent" set and
//     persists it so later loads are deterministic and editable by hand.
//   - New builds a Store from in-memory tables with the same validation.
//
// Files:
//
//	patterns.json   {"<pattern id>": {"PosX": <group>, "NegX": <group>, ...}, ...}
//	neighbors.json  {"<group id>": [<value>, ...], ...}
//
// Compatibility:
//
// Two cells A (at c) and B (at c+d) are compatible across their shared edge when
// StateOnAxis(B, -d) is listed in NeighborsOnAxis(A, d). The store does not
// require this relation to be symmetric; Asymmetries reports where it is not and
// WithStrictSymmetry turns any asymmetry into a load error.
//
// Errors:
//
//   - ErrBadDimension: dimension outside 1..axis.MaxDimension.
//   - ErrNeighborsNotFound: the neighbor-group file does not exist.
//   - ErrMalformed: a file is not valid JSON of the expected shape.
//   - ErrBadID: a pattern or group id is not a non-negative decimal integer.
//   - ErrNonContiguous: pattern ids are not exactly 0..N-1.
//   - ErrUnknownAxis: an axis name is unknown or outside the dimension.
//   - ErrMissingAxis: a pattern lacks an entry for one of its 2×D axes.
//   - ErrDanglingGroup: a pattern references a group absent from the neighbor table.
//   - ErrUnknownPattern: a lookup used an id outside 0..N-1.
//   - ErrAsymmetric: strict symmetry was requested and the tables are asymmetric.
//
// A Store is read-only after construction and safe for concurrent use.
package compat
