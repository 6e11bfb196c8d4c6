// Package vec provides the small fixed-size integer vectors used as grid
// coordinates, grid extents and unit directions.
//
// What:
//
//   - Vec2 and Vec3 are value types ([2]int, [3]int), comparable and usable as map keys.
//   - Vector[V] is the generic constraint the collapse engine is written against,
//     so one algorithm serves every dimensionality.
//   - Unit, Product and Less are generic helpers over Vector[V].
//
// Conventions:
//
//   - Vec2: Right=(1,0), Left=(-1,0), Up=(0,-1), Down=(0,1) (screen space, Y grows downwards).
//   - Vec3: Right=(1,0,0), Left=(-1,0,0), Up=(0,1,0), Down=(0,-1,0), Forward=(0,0,-1), Back=(0,0,1).
//
// All operations are O(D) and allocation-free.
package vec
