package solution

import "github.com/katalvlaran/knapsack/catalog"

// State is a mutable selection over a catalog with running totals.
//
// Totals are updated by the delta of each move only; nothing in this type
// rescans the mask. Capacity is not enforced here: solvers check feasibility
// before committing a move.
type State struct {
	cat     *catalog.Catalog
	mask    []bool
	weight  int64
	benefit int64
	count   int
}

// NewState returns an empty selection over cat.
func NewState(cat *catalog.Catalog) *State {
	return &State{cat: cat, mask: make([]bool, cat.Len())}
}

// Catalog returns the catalog the state indexes into.
func (s *State) Catalog() *catalog.Catalog { return s.cat }

// Len is the catalog size.
func (s *State) Len() int { return len(s.mask) }

// Contains reports whether item i is selected.
func (s *State) Contains(i int) bool { return s.mask[i] }

// Weight is the total weight of the selection.
func (s *State) Weight() int64 { return s.weight }

// Benefit is the total benefit of the selection.
func (s *State) Benefit() int64 { return s.benefit }

// Count is the number of selected items.
func (s *State) Count() int { return s.count }

// Add selects item i. It is a no-op if i is already selected.
func (s *State) Add(i int) {
	if s.mask[i] {
		return
	}
	s.mask[i] = true
	s.weight += s.cat.Weight(i)
	s.benefit += s.cat.Benefit(i)
	s.count++
}

// Remove deselects item i. It is a no-op if i is not selected.
func (s *State) Remove(i int) {
	if !s.mask[i] {
		return
	}
	s.mask[i] = false
	s.weight -= s.cat.Weight(i)
	s.benefit -= s.cat.Benefit(i)
	s.count--
}

// Swap removes out and adds in.
func (s *State) Swap(out, in int) {
	s.Remove(out)
	s.Add(in)
}

// Reset clears the selection.
func (s *State) Reset() {
	for i := range s.mask {
		s.mask[i] = false
	}
	s.weight, s.benefit, s.count = 0, 0, 0
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	cp := *s
	cp.mask = make([]bool, len(s.mask))
	copy(cp.mask, s.mask)
	return &cp
}

// CopyFrom overwrites s with o without allocating. Both states must index
// the same catalog.
func (s *State) CopyFrom(o *State) {
	copy(s.mask, o.mask)
	s.weight, s.benefit, s.count = o.weight, o.benefit, o.count
}

// Equal reports whether both states select exactly the same items.
func (s *State) Equal(o *State) bool {
	if s.count != o.count || s.weight != o.weight || s.benefit != o.benefit {
		return false
	}
	for i, v := range s.mask {
		if v != o.mask[i] {
			return false
		}
	}
	return true
}

// Selected returns the selected internal indices in ascending order.
func (s *State) Selected() []int {
	out := make([]int, 0, s.count)
	for i, v := range s.mask {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// Result snapshots the selection. Ids come out ascending because internal
// indices follow id order.
func (s *State) Result(iterations int, improvement int64) Result {
	ids := make([]uint32, 0, s.count)
	for i, v := range s.mask {
		if v {
			ids = append(ids, s.cat.ID(i))
		}
	}
	return Result{
		SelectedIDs: ids,
		Weight:      s.weight,
		Benefit:     s.benefit,
		Iterations:  iterations,
		Improvement: improvement,
	}
}

// FromResult rebuilds a state from a result's ids.
//
// Errors: catalog.ErrUnknownID (wrapped) for ids absent from cat.
func FromResult(cat *catalog.Catalog, res Result) (*State, error) {
	st := NewState(cat)
	for _, id := range res.SelectedIDs {
		i, err := cat.IndexOf(id)
		if err != nil {
			return nil, err
		}
		st.Add(i)
	}
	return st, nil
}
