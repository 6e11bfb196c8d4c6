// Package wfc is the root of a discrete Wave Function Collapse toolkit for
// 2D and 3D grids: tile-like patterns with typed sockets on each face are
// placed so that every pair of adjacent cells agrees on the socket they share.
//
// What is in the module?
//
//	vec/       — Vec2 / Vec3 coordinates behind one generic Vector constraint
//	axis/      — signed half-axes (PosX, NegY, …) and their unit vectors
//	compat/    — pattern and neighbor-group tables, JSON fixtures, symmetry checks
//	wfc/       — the engine: Pattern superpositions, Engine[V], Snapshot[V]
//	analysis/  — post-run checks: adjacency verification, regions, bridges
//	render/    — box-drawing text renderers for 2D grids and 3D layer stacks
//	cmd/wfc/   — the command-line tool (generate, batch, watch, check, …)
//
// How does a step look?
//
//	  ? ? ?         ? ╷ ?         ╶ ┐ ?
//	  ? ? ?   →     ╶ ┘ ?   →     · │ ?
//	  ? ? ?         ? ? ?         ? ╵ ?
//
// Each Iterate picks the least-entropy open cell, collapses it to one
// pattern, and propagates the consequence to the neighbors until nothing
// changes. Identical seeds give identical grids.
//
// Quick start:
//
//	store, _ := compat.New(2, compat.Synthesize(2), compat.DefaultNeighbors())
//	e, _ := wfc.New(store, vec.V2(16, 8), wfc.Options{BoundaryConstraint: true, Seed: 42})
//	_ = e.Run(ctx, nil)
//	r, _ := render.NewText2D(store)
//	_ = r.Render(e.Snapshot(), nil)
//	fmt.Println(r.String())
//
//	go install github.com/katalvlaran/wfc/cmd/wfc@latest
package wfc
