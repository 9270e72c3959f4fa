package sparsecs

import (
	"iter"

	"github.com/rs/zerolog"
)

// FlagPool records presence only. Values passed to Emplace are discarded;
// Get and At hand out a pointer to a scratch zero value that is reset on
// every call.
type FlagPool[E Identifier, T any] struct {
	set     SparseSet[E]
	scratch T
	logger  zerolog.Logger
}

// NewFlagPool creates an empty FlagPool.
func NewFlagPool[E Identifier, T any]() *FlagPool[E, T] {
	return &FlagPool[E, T]{logger: zerolog.Nop()}
}

func (p *FlagPool[E, T]) Kind() PoolKind { return PoolFlag }

func (p *FlagPool[E, T]) Len() int { return p.set.Len() }

func (p *FlagPool[E, T]) Entities() []E { return p.set.Entities() }

func (p *FlagPool[E, T]) Contains(e E) bool { return p.set.Contains(e) }

// Set exposes the underlying SparseSet.
func (p *FlagPool[E, T]) Set() *SparseSet[E] { return &p.set }

func (p *FlagPool[E, T]) Emplace(e E, _ T) error {
	return p.set.Emplace(e)
}

func (p *FlagPool[E, T]) Remove(e E) bool {
	if !p.set.Remove(e) {
		return false
	}
	logRemoval(&p.logger, PoolFlag, e)
	return true
}

func (p *FlagPool[E, T]) zero() *T {
	var z T
	p.scratch = z
	return &p.scratch
}

func (p *FlagPool[E, T]) Get(e E) (*T, error) {
	if !p.set.Contains(e) {
		return nil, notOnEntity(e)
	}
	return p.zero(), nil
}

func (p *FlagPool[E, T]) TryGet(e E) (*T, bool) {
	if !p.set.Contains(e) {
		return nil, false
	}
	return p.zero(), true
}

func (p *FlagPool[E, T]) At(int) *T { return p.zero() }

func (p *FlagPool[E, T]) Each(fn func(E, *T)) {
	for _, e := range p.set.Entities() {
		fn(e, p.zero())
	}
}

func (p *FlagPool[E, T]) All() iter.Seq2[E, *T] {
	return func(yield func(E, *T) bool) {
		for _, e := range p.set.Entities() {
			if !yield(e, p.zero()) {
				return
			}
		}
	}
}

func (p *FlagPool[E, T]) Clear() { p.set.Clear() }
