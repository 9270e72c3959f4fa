package sparsecs

import "github.com/rotisserie/eris"

// Filter gates View membership on a pool without contributing data: an
// entity matches only if every filter pool contains it. A filter pool can
// still be chosen as the driver when it is the smallest.
type Filter[E Identifier] struct {
	pool Pool[E]
	err  error
}

// With filters on the presence of component T in w. The pool of T is created
// if needed.
//
//	view, err := sparsecs.NewView1[Position](w, sparsecs.With[Enemy](w))
func With[T any, E Identifier](w *World[E]) Filter[E] {
	p, err := PoolOf[T](w)
	if err != nil {
		return Filter[E]{err: err}
	}
	return Filter[E]{pool: p}
}

// FilterPool filters on membership in any pool, including pools that do not
// belong to a World.
func FilterPool[E Identifier](p Pool[E]) Filter[E] {
	return Filter[E]{pool: p}
}

func (f Filter[E]) resolve() (Pool[E], error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.pool == nil {
		return nil, eris.Wrap(ErrNilFilter, "view filter")
	}
	return f.pool, nil
}
