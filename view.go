package sparsecs

import (
	"iter"

	"github.com/rotisserie/eris"
)

// viewBase holds the pools of a View and the iteration cursor shared by every
// arity. pools lists the required pools first, then the filter pools.
type viewBase[E Identifier] struct {
	pools     []Pool[E]
	driver    Pool[E]
	driverIdx int
	cursor    int
	cur       E
	buf       []E
}

// newViewBase picks the driver: the smallest pool among required and filter
// pools, the first one on ties. The choice is fixed for the life of the View.
func newViewBase[E Identifier](required []Pool[E], filters []Filter[E]) (viewBase[E], error) {
	pools := make([]Pool[E], 0, len(required)+len(filters))
	pools = append(pools, required...)
	for _, f := range filters {
		p, err := f.resolve()
		if err != nil {
			return viewBase[E]{}, err
		}
		pools = append(pools, p)
	}
	driverIdx := 0
	for i, p := range pools {
		if p.Len() < pools[driverIdx].Len() {
			driverIdx = i
		}
	}
	v := viewBase[E]{pools: pools, driver: pools[driverIdx], driverIdx: driverIdx}
	v.Reset()
	return v, nil
}

// matches checks e against every pool but the driver, stopping at the first
// miss.
func (v *viewBase[E]) matches(e E) bool {
	for i, p := range v.pools {
		if i != v.driverIdx && !p.Contains(e) {
			return false
		}
	}
	return true
}

// isDriver reports whether required pool i drives the iteration, in which
// case its component is read by packed position.
func (v *viewBase[E]) isDriver(i int) bool {
	return i == v.driverIdx
}

// Driver returns the pool the View iterates.
func (v *viewBase[E]) Driver() Pool[E] {
	return v.driver
}

// Contains reports whether e is in every pool of the View.
func (v *viewBase[E]) Contains(e E) bool {
	for _, p := range v.pools {
		if !p.Contains(e) {
			return false
		}
	}
	return true
}

// Reset rewinds the cursor used by Next.
func (v *viewBase[E]) Reset() {
	v.cursor = -1
	v.cur = Null[E]()
}

// Next advances the cursor to the next matching entity.
//
// Example:
//
//	view.Reset()
//	for view.Next() {
//		pos, vel := view.Components()
//		// ...
//	}
//
// Returns:
//   - true if another matching entity was found, false otherwise.
func (v *viewBase[E]) Next() bool {
	ents := v.driver.Entities()
	for v.cursor++; v.cursor < len(ents); v.cursor++ {
		if e := ents[v.cursor]; v.matches(e) {
			v.cur = e
			return true
		}
	}
	v.cur = Null[E]()
	return false
}

// Entity returns the entity under the cursor, or Null before the first Next
// and after the last.
func (v *viewBase[E]) Entity() E {
	return v.cur
}

// All yields every matching entity in driver order.
func (v *viewBase[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		ents := v.driver.Entities()
		for i := 0; i < len(ents); i++ {
			if e := ents[i]; v.matches(e) && !yield(e) {
				return
			}
		}
	}
}

// Entities returns the matching entities. The slice is owned by the View and
// overwritten by the next call.
func (v *viewBase[E]) Entities() []E {
	v.buf = v.buf[:0]
	for e := range v.All() {
		v.buf = append(v.buf, e)
	}
	return v.buf
}

// Count returns the number of matching entities. It walks the driver.
func (v *viewBase[E]) Count() int {
	n := 0
	for range v.All() {
		n++
	}
	return n
}

func (v *viewBase[E]) notInView(e E) error {
	return eris.Wrapf(ErrComponentNotOnEntity, "entity %s not in view", FormatEntity(e))
}

// component returns the value of p for e, which must be a member. The driver
// pool is read at packed position i without a lookup.
func component[T any, E Identifier](p ComponentPool[E, T], driver bool, i int, e E) *T {
	if driver {
		return p.At(i)
	}
	c, _ := p.TryGet(e)
	return c
}

// View1 iterates the entities that have T1 and pass every filter.
type View1[T1 any, E Identifier] struct {
	viewBase[E]
	p1 ComponentPool[E, T1]
}

// NewView1 creates a View over the pool of T1, creating the pool if needed.
//
// Parameters:
//   - w: The World to query.
//   - filters: Additional pools an entity must be in to match.
//
// Returns:
//   - The View, or the registration error of T1 or a filter.
func NewView1[T1 any, E Identifier](w *World[E], filters ...Filter[E]) (*View1[T1, E], error) {
	p1, err := PoolOf[T1](w)
	if err != nil {
		return nil, err
	}
	base, err := newViewBase([]Pool[E]{p1}, filters)
	if err != nil {
		return nil, err
	}
	return &View1[T1, E]{viewBase: base, p1: p1}, nil
}

// Each calls fn with the components of every matching entity, in driver
// order. Pools of the View must not gain or lose members during the call.
func (v *View1[T1, E]) Each(fn func(*T1)) {
	ents := v.driver.Entities()
	for i := 0; i < len(ents); i++ {
		e := ents[i]
		if !v.matches(e) {
			continue
		}
		fn(component(v.p1, v.isDriver(0), i, e))
	}
}

// EachWithEntity is Each with the entity passed first.
func (v *View1[T1, E]) EachWithEntity(fn func(E, *T1)) {
	ents := v.driver.Entities()
	for i := 0; i < len(ents); i++ {
		e := ents[i]
		if !v.matches(e) {
			continue
		}
		fn(e, component(v.p1, v.isDriver(0), i, e))
	}
}

// Get returns the components of e.
func (v *View1[T1, E]) Get(e E) (*T1, error) {
	if !v.Contains(e) {
		return nil, v.notInView(e)
	}
	c1, _ := v.p1.TryGet(e)
	return c1, nil
}

// Components returns the components of the entity under the cursor.
func (v *View1[T1, E]) Components() *T1 {
	return component(v.p1, v.isDriver(0), v.cursor, v.cur)
}
