package analysis

import (
	"container/list"

	"github.com/katalvlaran/wfc/axis"
	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

// arms precomputes, per cell and per axis slot, whether the cell is resolved
// and carries a non-zero state on that axis.
type arms[V vec.Vector[V]] struct {
	cells   []wfc.Cell[V]
	dirs    []V
	axes    []axis.Axis
	has     [][]bool // has[idx][slot]
	strides []int
}

func newArms[V vec.Vector[V]](snap *wfc.Snapshot[V], store *compat.Store) (*arms[V], error) {
	a := &arms[V]{
		cells: snap.Cells(),
		dirs:  snap.Directions(),
		axes:  axis.All(store.Dimension()),
	}
	ext := snap.Extents()
	stride := 1
	for i := 0; i < ext.Dim(); i++ {
		a.strides = append(a.strides, stride)
		stride *= ext.At(i)
	}

	a.has = make([][]bool, len(a.cells))
	for idx, c := range a.cells {
		if c.Status != wfc.Resolved {
			continue
		}
		row := make([]bool, len(a.axes))
		for slot, ax := range a.axes {
			st, err := store.StateOnAxis(c.State, ax)
			if err != nil {
				return nil, err
			}
			row[slot] = st != 0
		}
		a.has[idx] = row
	}

	return a, nil
}

func (a *arms[V]) index(c V) int {
	idx := 0
	for i, s := range a.strides {
		idx += c.At(i) * s
	}

	return idx
}

// land reports whether cell idx is resolved with at least one arm.
func (a *arms[V]) land(idx int) bool {
	for _, ok := range a.has[idx] {
		if ok {
			return true
		}
	}

	return false
}

// linked reports whether u and its neighbor v across slot both reach the
// shared edge. The reverse slot of slot s is s^1 in axis.All order.
func (a *arms[V]) linked(u, v, slot int) bool {
	return a.has[u] != nil && a.has[v] != nil && a.has[u][slot] && a.has[v][slot^1]
}

// neighbor returns the index of the cell next to u across slot, or -1.
func (a *arms[V]) neighbor(snap *wfc.Snapshot[V], u, slot int) int {
	nc := a.cells[u].Coord.Add(a.dirs[slot])
	if !snap.InBounds(nc) {
		return -1
	}

	return a.index(nc)
}

// Regions returns the connected networks of linked resolved cells, ordered by
// their first cell in row-major order; each region lists its cells in BFS
// order. Resolved cells without any arm, superposed cells and contradictions
// belong to no region.
func Regions[V vec.Vector[V]](snap *wfc.Snapshot[V], store *compat.Store) ([][]V, error) {
	if err := check(snap, store); err != nil {
		return nil, err
	}
	a, err := newArms(snap, store)
	if err != nil {
		return nil, err
	}

	return a.regions(snap), nil
}

func (a *arms[V]) regions(snap *wfc.Snapshot[V]) [][]V {
	seen := make([]bool, len(a.cells))
	var out [][]V
	for i0 := range a.cells {
		if seen[i0] || !a.land(i0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []V
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, a.cells[u].Coord)
			for slot := range a.axes {
				v := a.neighbor(snap, u, slot)
				if v < 0 || seen[v] || !a.linked(u, v, slot) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		out = append(out, comp)
	}

	return out
}

// Bridge finds a path from any cell of region src to any cell of region dst,
// as numbered by Regions, that crosses the fewest unlinked edges. Moving along
// a linked edge costs 0, any other step costs 1. The path includes both end
// cells.
//
// Returns ErrRegionIndex for bad indices and ErrNoPath when dst is unreachable.
func Bridge[V vec.Vector[V]](snap *wfc.Snapshot[V], store *compat.Store, src, dst int) (path []V, cost int, err error) {
	if err = check(snap, store); err != nil {
		return nil, 0, err
	}
	a, err := newArms(snap, store)
	if err != nil {
		return nil, 0, err
	}
	regions := a.regions(snap)
	if src < 0 || src >= len(regions) || dst < 0 || dst >= len(regions) {
		return nil, 0, ErrRegionIndex
	}
	dstSet := make(map[int]struct{}, len(regions[dst]))
	for _, c := range regions[dst] {
		dstSet[a.index(c)] = struct{}{}
	}

	n := len(a.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back.
	dq := list.New()
	for _, c := range regions[src] {
		i := a.index(c)
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		for slot := range a.axes {
			v := a.neighbor(snap, u, slot)
			if v < 0 {
				continue
			}
			step := 1
			if a.linked(u, v, slot) {
				step = 0
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append([]V{a.cells[at].Coord}, path...)
	}

	return path, dist[target], nil
}
