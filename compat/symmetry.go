package compat

// Asymmetries lists every ordered pair that is compatible in one direction only.
//
// For patterns A, B and axis d, the store is symmetric when
//
//	Compatible(A, d, B) == Compatible(B, d.Reverse(), A)
//
// Each violation is reported once, from the side that admits the other, in
// ascending (From, axis slot, To) order.
//
// Complexity: O(N²×D).
func (s *Store) Asymmetries() []Asymmetry {
	var out []Asymmetry
	n := len(s.states)
	for a := 0; a < n; a++ {
		for slot, d := range s.axes {
			admitted := s.sets[s.states[a][slot]]
			rev := d.Reverse()
			revSlot := slotOf(rev)
			for b := 0; b < n; b++ {
				if !admitted[s.states[b][revSlot]] {
					continue
				}
				// b sits next to a along d; check a next to b along -d.
				if !s.sets[s.states[b][revSlot]][s.states[a][slot]] {
					out = append(out, Asymmetry{From: a, Axis: d, To: b})
				}
			}
		}
	}

	return out
}

// Symmetric reports whether Asymmetries is empty.
func (s *Store) Symmetric() bool {
	return len(s.Asymmetries()) == 0
}
