package sparsecs

import (
	"iter"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// MemoryPool keeps parallel packed arrays of entities and components with
// no sparse pages. Every lookup is a linear scan, which is cheaper than a
// page table when only a handful of entities carry the component.
type MemoryPool[E Identifier, T any] struct {
	packed     []E
	components []T
	logger     zerolog.Logger
}

// NewMemoryPool creates an empty MemoryPool.
func NewMemoryPool[E Identifier, T any]() *MemoryPool[E, T] {
	return &MemoryPool[E, T]{logger: zerolog.Nop()}
}

func (p *MemoryPool[E, T]) Kind() PoolKind { return PoolMemoryOptimized }

func (p *MemoryPool[E, T]) Len() int { return len(p.packed) }

func (p *MemoryPool[E, T]) Entities() []E { return p.packed }

func (p *MemoryPool[E, T]) index(e E) int {
	for i, x := range p.packed {
		if x == e {
			return i
		}
	}
	return -1
}

func (p *MemoryPool[E, T]) Contains(e E) bool { return p.index(e) >= 0 }

func (p *MemoryPool[E, T]) Emplace(e E, value T) error {
	if !IsValid(e) {
		return eris.Wrapf(ErrInvalidEntity, "emplace %s", FormatEntity(e))
	}
	if p.Contains(e) {
		return eris.Wrapf(ErrComponentAlreadyOnEntity, "entity %s", FormatEntity(e))
	}
	p.packed = append(p.packed, e)
	p.components = append(p.components, value)
	return nil
}

func (p *MemoryPool[E, T]) Remove(e E) bool {
	pos := p.index(e)
	if pos < 0 {
		return false
	}
	last := len(p.packed) - 1
	p.packed[pos] = p.packed[last]
	p.components[pos] = p.components[last]
	var zero T
	p.components[last] = zero
	p.packed = p.packed[:last]
	p.components = p.components[:last]
	logRemoval(&p.logger, PoolMemoryOptimized, e)
	return true
}

func (p *MemoryPool[E, T]) Get(e E) (*T, error) {
	c, ok := p.TryGet(e)
	if !ok {
		return nil, notOnEntity(e)
	}
	return c, nil
}

func (p *MemoryPool[E, T]) TryGet(e E) (*T, bool) {
	pos := p.index(e)
	if pos < 0 {
		return nil, false
	}
	return &p.components[pos], true
}

func (p *MemoryPool[E, T]) At(i int) *T { return &p.components[i] }

func (p *MemoryPool[E, T]) Each(fn func(E, *T)) {
	for i, e := range p.packed {
		fn(e, &p.components[i])
	}
}

func (p *MemoryPool[E, T]) All() iter.Seq2[E, *T] {
	return func(yield func(E, *T) bool) {
		for i, e := range p.packed {
			if !yield(e, &p.components[i]) {
				return
			}
		}
	}
}

func (p *MemoryPool[E, T]) Clear() {
	clear(p.components)
	p.packed = p.packed[:0]
	p.components = p.components[:0]
}
