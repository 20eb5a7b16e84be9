package tabu

import "fmt"

// Kind tags a Move.
type Kind uint8

const (
	// KindAdd selects one more item.
	KindAdd Kind = iota
	// KindSwap replaces a selected item with an unselected one.
	KindSwap
)

// Move is a comparable add/swap variant; it is used directly as a map key.
// For KindAdd, Out is -1.
type Move struct {
	Kind Kind
	Out  int
	In   int
}

// Add returns the move selecting item j.
func Add(j int) Move { return Move{Kind: KindAdd, Out: -1, In: j} }

// Swap returns the move removing item i and selecting item j.
func Swap(i, j int) Move { return Move{Kind: KindSwap, Out: i, In: j} }

// Inverse returns the move that undoes m. Only swaps have an inverse that
// is recorded in the memory.
func (m Move) Inverse() (Move, bool) {
	if m.Kind != KindSwap {
		return Move{}, false
	}
	return Swap(m.In, m.Out), true
}

func (m Move) String() string {
	if m.Kind == KindAdd {
		return fmt.Sprintf("add(%d)", m.In)
	}
	return fmt.Sprintf("swap(%d→%d)", m.Out, m.In)
}

// Memory maps recorded moves to the iteration at which they stop being tabu.
type Memory struct {
	expiry map[Move]int
}

// NewMemory returns an empty memory.
func NewMemory() *Memory {
	return &Memory{expiry: make(map[Move]int)}
}

// Forbid records m until the given expiry iteration. A later call replaces
// the earlier expiry.
func (mem *Memory) Forbid(m Move, expiry int) { mem.expiry[m] = expiry }

// IsTabu reports whether m is forbidden at iteration iter.
func (mem *Memory) IsTabu(m Move, iter int) bool {
	e, ok := mem.expiry[m]
	return ok && e > iter
}

// Purge drops entries with expiry ≤ iter.
func (mem *Memory) Purge(iter int) {
	for m, e := range mem.expiry {
		if e <= iter {
			delete(mem.expiry, m)
		}
	}
}

// Len is the number of recorded moves.
func (mem *Memory) Len() int { return len(mem.expiry) }
