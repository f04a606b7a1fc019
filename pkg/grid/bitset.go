package grid

import "math/bits"

// Bitset is a bit-per-cell visited set over a grid. It exists so the
// solver's inner loop touches one cache line per query instead of a
// bool-per-cell slice. Operations are O(1); memory is ⌈cells/64⌉ words.
//
// Callers must not mark an already-marked cell or unmark an unset one;
// the solver guarantees this by construction (marks mirror the path
// stack exactly).
type Bitset struct {
	words []uint64
	size  Size
}

// NewBitset creates an empty visited set sized for s. The set grows with
// the grid, so there is no fixed capacity ceiling.
func NewBitset(s Size) *Bitset {
	return &Bitset{
		words: make([]uint64, (s.Cells()+63)/64),
		size:  s,
	}
}

// Visited reports whether p is marked.
func (b *Bitset) Visited(p Point) bool {
	i := b.size.Index(p)
	return b.words[i>>6]&(1<<(uint(i)&63)) != 0
}

// Mark sets the bit for p.
func (b *Bitset) Mark(p Point) {
	i := b.size.Index(p)
	b.words[i>>6] |= 1 << (uint(i) & 63)
}

// Unmark clears the bit for p.
func (b *Bitset) Unmark(p Point) {
	i := b.size.Index(p)
	b.words[i>>6] &^= 1 << (uint(i) & 63)
}

// Reset clears every bit, allowing the set to be reused as scratch space
// without reallocating.
func (b *Bitset) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Count returns the number of marked cells.
func (b *Bitset) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Size returns the grid dimensions the set was created for.
func (b *Bitset) Size() Size { return b.size }
