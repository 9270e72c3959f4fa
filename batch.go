package sparsecs

import "github.com/rotisserie/eris"

// Batch creates entities that all start with component T.
type Batch[T any, E Identifier] struct {
	world *World[E]
	pool  ComponentPool[E, T]
}

// CreateBatch creates a Batch for component T in w.
func CreateBatch[T any, E Identifier](w *World[E]) (*Batch[T, E], error) {
	p, err := PoolOf[T](w)
	if err != nil {
		return nil, err
	}
	return &Batch[T, E]{world: w, pool: p}, nil
}

// CreateEntities creates count entities holding the zero T.
func (b *Batch[T, E]) CreateEntities(count int) ([]E, error) {
	var zero T
	return b.CreateEntitiesWithComponentsTo(count, make([]E, 0, count), zero)
}

// CreateEntitiesWithComponents creates count entities holding c.
func (b *Batch[T, E]) CreateEntitiesWithComponents(count int, c T) ([]E, error) {
	return b.CreateEntitiesWithComponentsTo(count, make([]E, 0, count), c)
}

// CreateEntitiesWithComponentsTo creates count entities holding c and
// appends them to dst. On error dst holds the entities created so far.
func (b *Batch[T, E]) CreateEntitiesWithComponentsTo(count int, dst []E, c T) ([]E, error) {
	for range count {
		e, err := b.world.TryCreate()
		if err != nil {
			return dst, err
		}
		if err := b.pool.Emplace(e, c); err != nil {
			return dst, err
		}
		dst = append(dst, e)
	}
	return dst, nil
}

// EmplaceBatch sets T to value on every entity, attaching it where absent.
// It stops at the first dead entity.
func EmplaceBatch[T any, E Identifier](w *World[E], entities []E, value T) error {
	p, err := PoolOf[T](w)
	if err != nil {
		return err
	}
	for _, e := range entities {
		if !w.Alive(e) {
			return eris.Wrapf(ErrEntityNotAlive, "batch emplace on %s", FormatEntity(e))
		}
		if c, ok := p.TryGet(e); ok {
			*c = value
			continue
		}
		if err := p.Emplace(e, value); err != nil {
			return err
		}
	}
	return nil
}

// RemoveBatch detaches T from every entity that has it and returns how many
// were detached.
func RemoveBatch[T any, E Identifier](w *World[E], entities []E) int {
	p, ok := LookupPool[T](w)
	if !ok {
		return 0
	}
	n := 0
	for _, e := range entities {
		if p.Remove(e) {
			n++
		}
	}
	return n
}

// DestroyBatch destroys every live entity in entities and returns how many
// were destroyed. Stale handles are skipped.
func (w *World[E]) DestroyBatch(entities []E) int {
	n := 0
	for _, e := range entities {
		if w.Destroy(e) == nil {
			n++
		}
	}
	return n
}
