package sparsecs

import (
	"reflect"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// PoolOf returns the pool of T in w, creating it on first use.
//
// It fails with ErrIdentifierMismatch when T is bound to another identifier
// type and with ErrComponentIDCollision when another type already holds the
// ComponentID of T.
func PoolOf[T any, E Identifier](w *World[E]) (ComponentPool[E, T], error) {
	if pe := w.lookup(reflect.TypeFor[T]()); pe != nil {
		return pe.typed.(ComponentPool[E, T]), nil
	}
	pe, err := w.register(resolveComponent[T](), func(kind PoolKind, logger zerolog.Logger) (Pool[E], any) {
		p := newPool[E, T](kind, logger)
		return p, p
	})
	if err != nil {
		return nil, err
	}
	return pe.typed.(ComponentPool[E, T]), nil
}

// LookupPool returns the pool of T if it has been created.
func LookupPool[T any, E Identifier](w *World[E]) (ComponentPool[E, T], bool) {
	pe := w.lookup(reflect.TypeFor[T]())
	if pe == nil {
		return nil, false
	}
	return pe.typed.(ComponentPool[E, T]), true
}

// Emplace attaches value to e.
//
// Parameters:
//   - w: The World that owns e.
//   - e: A live entity.
//   - value: The component value, copied into the pool.
//
// Returns:
//   - ErrEntityNotAlive if e is stale, ErrComponentAlreadyOnEntity if e
//     already has a T, or a registration error for T.
func Emplace[T any, E Identifier](w *World[E], e E, value T) error {
	if !w.Alive(e) {
		return eris.Wrapf(ErrEntityNotAlive, "emplace on %s", FormatEntity(e))
	}
	p, err := PoolOf[T](w)
	if err != nil {
		return err
	}
	return p.Emplace(e, value)
}

// EmplaceOrReplace attaches value to e, overwriting any T already there.
func EmplaceOrReplace[T any, E Identifier](w *World[E], e E, value T) error {
	if !w.Alive(e) {
		return eris.Wrapf(ErrEntityNotAlive, "emplace on %s", FormatEntity(e))
	}
	p, err := PoolOf[T](w)
	if err != nil {
		return err
	}
	if c, ok := p.TryGet(e); ok {
		*c = value
		return nil
	}
	return p.Emplace(e, value)
}

// Remove detaches T from e and reports whether it was attached. It never
// creates a pool.
func Remove[T any, E Identifier](w *World[E], e E) bool {
	p, ok := LookupPool[T](w)
	return ok && p.Remove(e)
}

// Contains reports whether e has a T. It never creates a pool.
func Contains[T any, E Identifier](w *World[E], e E) bool {
	p, ok := LookupPool[T](w)
	return ok && p.Contains(e)
}

// Query returns the T attached to e. The pointer is valid until the next
// structural change of the pool of T.
func Query[T any, E Identifier](w *World[E], e E) (*T, error) {
	if !w.Alive(e) {
		return nil, eris.Wrapf(ErrEntityNotAlive, "query on %s", FormatEntity(e))
	}
	p, ok := LookupPool[T](w)
	if !ok {
		return nil, eris.Wrapf(ErrComponentNotOnEntity, "%s on entity %s", ComponentName[T](), FormatEntity(e))
	}
	return p.Get(e)
}
