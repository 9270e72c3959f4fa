package sparsecs

import (
	"iter"

	"github.com/rotisserie/eris"
)

// PageSize is the number of sparse slots in one page of a SparseSet.
const PageSize = 1 << pageBits

const (
	pageBits = 12
	pageMask = PageSize - 1
)

// SparseSet maps entity indices to positions in a dense packed array.
//
// The sparse side is a table of fixed-size pages allocated on first touch, so
// a single high index costs one page rather than every page below it. Each
// sparse slot stores the packed position of its entity encoded as an
// identifier (position in the index field), or Null when empty.
//
// For every member e: packed[IndexOf(sparse[IndexOf(e)])] == e.
type SparseSet[E Identifier] struct {
	sparse [][]E
	packed []E
}

// NewSparseSet creates an empty SparseSet.
func NewSparseSet[E Identifier]() *SparseSet[E] {
	return &SparseSet[E]{}
}

// slot returns the sparse slot for e, or nil if its page is not allocated.
func (s *SparseSet[E]) slot(e E) *E {
	idx := uint64(IndexOf(e))
	page := idx >> pageBits
	if page >= uint64(len(s.sparse)) || s.sparse[page] == nil {
		return nil
	}
	return &s.sparse[page][idx&pageMask]
}

// assureSlot returns the sparse slot for e, allocating its page if needed.
func (s *SparseSet[E]) assureSlot(e E) *E {
	idx := uint64(IndexOf(e))
	page := int(idx >> pageBits)
	if page >= len(s.sparse) {
		s.sparse = extendSlice(s.sparse, page+1-len(s.sparse))
	}
	if s.sparse[page] == nil {
		p := make([]E, PageSize)
		null := Null[E]()
		for i := range p {
			p[i] = null
		}
		s.sparse[page] = p
	}
	return &s.sparse[page][idx&pageMask]
}

// Index returns the packed position of e.
func (s *SparseSet[E]) Index(e E) (int, bool) {
	sl := s.slot(e)
	if sl == nil || !IsValid(*sl) {
		return 0, false
	}
	pos := int(IndexOf(*sl))
	if pos >= len(s.packed) || s.packed[pos] != e {
		return 0, false
	}
	return pos, true
}

// Contains reports whether e is a member. A stale handle whose index is
// occupied by a newer version is not a member.
func (s *SparseSet[E]) Contains(e E) bool {
	_, ok := s.Index(e)
	return ok
}

// Emplace appends e to the packed array. It fails for a null entity and for
// an index that is already occupied, whether by e itself or by another
// version of the same index.
func (s *SparseSet[E]) Emplace(e E) error {
	if !IsValid(e) {
		return eris.Wrapf(ErrInvalidEntity, "emplace %s", FormatEntity(e))
	}
	sl := s.assureSlot(e)
	if IsValid(*sl) {
		return eris.Wrapf(ErrComponentAlreadyOnEntity, "entity %s, index held by %s",
			FormatEntity(e), FormatEntity(s.packed[int(IndexOf(*sl))]))
	}
	*sl = Construct(E(len(s.packed)), 0)
	s.packed = append(s.packed, e)
	return nil
}

// Remove deletes e with swap-and-pop: the last packed entity moves into the
// vacated position and its sparse slot is repointed. It returns false if e
// is not a member.
func (s *SparseSet[E]) Remove(e E) bool {
	_, ok := s.swapRemove(e)
	return ok
}

// swapRemove removes e and returns the packed position it occupied before
// removal. The caller mirrors the same swap on any parallel array.
func (s *SparseSet[E]) swapRemove(e E) (int, bool) {
	pos, ok := s.Index(e)
	if !ok {
		return 0, false
	}
	last := len(s.packed) - 1
	moved := s.packed[last]
	s.packed[pos] = moved
	*s.slot(moved) = Construct(E(pos), 0)
	*s.slot(e) = Null[E]()
	s.packed = s.packed[:last]
	return pos, true
}

// Len returns the number of members.
func (s *SparseSet[E]) Len() int {
	return len(s.packed)
}

// At returns the member at packed position i.
func (s *SparseSet[E]) At(i int) E {
	return s.packed[i]
}

// Entities returns the packed array. The slice is owned by the set and is
// invalidated by the next structural change.
func (s *SparseSet[E]) Entities() []E {
	return s.packed
}

// All iterates members in packed order with their positions.
func (s *SparseSet[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range s.packed {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Clear removes every member. Allocated pages are kept and reset to Null.
func (s *SparseSet[E]) Clear() {
	null := Null[E]()
	for _, e := range s.packed {
		*s.slot(e) = null
	}
	s.packed = s.packed[:0]
}

// PageCount returns the length of the page table, allocated or not.
func (s *SparseSet[E]) PageCount() int {
	return len(s.sparse)
}

// AllocatedPages returns how many pages hold memory.
func (s *SparseSet[E]) AllocatedPages() int {
	n := 0
	for _, p := range s.sparse {
		if p != nil {
			n++
		}
	}
	return n
}
