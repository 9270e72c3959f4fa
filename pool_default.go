package sparsecs

import (
	"iter"

	"github.com/rs/zerolog"
)

// DefaultPool stores components in an array kept in lockstep with the packed
// array of its SparseSet: components[i] belongs to set.At(i).
type DefaultPool[E Identifier, T any] struct {
	set        SparseSet[E]
	components []T
	logger     zerolog.Logger
}

// NewDefaultPool creates an empty DefaultPool.
func NewDefaultPool[E Identifier, T any]() *DefaultPool[E, T] {
	return &DefaultPool[E, T]{logger: zerolog.Nop()}
}

func (p *DefaultPool[E, T]) Kind() PoolKind { return PoolDefault }

func (p *DefaultPool[E, T]) Len() int { return p.set.Len() }

func (p *DefaultPool[E, T]) Entities() []E { return p.set.Entities() }

func (p *DefaultPool[E, T]) Contains(e E) bool { return p.set.Contains(e) }

// Set exposes the underlying SparseSet.
func (p *DefaultPool[E, T]) Set() *SparseSet[E] { return &p.set }

func (p *DefaultPool[E, T]) Emplace(e E, value T) error {
	if err := p.set.Emplace(e); err != nil {
		return err
	}
	p.components = append(p.components, value)
	return nil
}

// Remove swaps the tail value into the slot of e exactly as the SparseSet
// swaps the tail entity, then pops both.
func (p *DefaultPool[E, T]) Remove(e E) bool {
	pos, ok := p.set.swapRemove(e)
	if !ok {
		return false
	}
	last := len(p.components) - 1
	p.components[pos] = p.components[last]
	var zero T
	p.components[last] = zero
	p.components = p.components[:last]
	logRemoval(&p.logger, PoolDefault, e)
	return true
}

func (p *DefaultPool[E, T]) Get(e E) (*T, error) {
	c, ok := p.TryGet(e)
	if !ok {
		return nil, notOnEntity(e)
	}
	return c, nil
}

func (p *DefaultPool[E, T]) TryGet(e E) (*T, bool) {
	pos, ok := p.set.Index(e)
	if !ok {
		return nil, false
	}
	return &p.components[pos], true
}

func (p *DefaultPool[E, T]) At(i int) *T { return &p.components[i] }

func (p *DefaultPool[E, T]) Each(fn func(E, *T)) {
	for i, e := range p.set.Entities() {
		fn(e, &p.components[i])
	}
}

func (p *DefaultPool[E, T]) All() iter.Seq2[E, *T] {
	return func(yield func(E, *T) bool) {
		for i, e := range p.set.Entities() {
			if !yield(e, &p.components[i]) {
				return
			}
		}
	}
}

func (p *DefaultPool[E, T]) Clear() {
	p.set.Clear()
	clear(p.components)
	p.components = p.components[:0]
}
