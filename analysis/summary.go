package analysis

import (
	"sort"

	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

// Summary counts cells per status and resolved cells per pattern id.
type Summary struct {
	Cells          int
	Resolved       int
	Superposed     int
	Contradictions int
	Histogram      map[int]int
}

// Summarize builds a Summary of snap. A nil snapshot yields the zero Summary.
func Summarize[V vec.Vector[V]](snap *wfc.Snapshot[V]) Summary {
	s := Summary{Histogram: make(map[int]int)}
	if snap == nil {
		return s
	}
	for _, c := range snap.Cells() {
		s.Cells++
		switch c.Status {
		case wfc.Resolved:
			s.Resolved++
			s.Histogram[c.State]++
		case wfc.Superposed:
			s.Superposed++
		case wfc.Contradiction:
			s.Contradictions++
		}
	}

	return s
}

// Patterns returns the ids present in the histogram in ascending order.
func (s Summary) Patterns() []int {
	ids := make([]int, 0, len(s.Histogram))
	for id := range s.Histogram {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Complete reports whether every cell resolved.
func (s Summary) Complete() bool { return s.Cells > 0 && s.Resolved == s.Cells }
