package sparsecs

// View2 iterates the entities that have T1, T2 and pass every filter.
type View2[T1, T2 any, E Identifier] struct {
	viewBase[E]
	p1 ComponentPool[E, T1]
	p2 ComponentPool[E, T2]
}

// NewView2 creates a View over the pools of T1, T2, creating them if needed.
func NewView2[T1, T2 any, E Identifier](w *World[E], filters ...Filter[E]) (*View2[T1, T2, E], error) {
	p1, err := PoolOf[T1](w)
	if err != nil {
		return nil, err
	}
	p2, err := PoolOf[T2](w)
	if err != nil {
		return nil, err
	}
	base, err := newViewBase([]Pool[E]{p1, p2}, filters)
	if err != nil {
		return nil, err
	}
	return &View2[T1, T2, E]{viewBase: base, p1: p1, p2: p2}, nil
}

// Each calls fn with the components of every matching entity, in driver
// order.
func (v *View2[T1, T2, E]) Each(fn func(*T1, *T2)) {
	ents := v.driver.Entities()
	for i := 0; i < len(ents); i++ {
		e := ents[i]
		if !v.matches(e) {
			continue
		}
		fn(component(v.p1, v.isDriver(0), i, e), component(v.p2, v.isDriver(1), i, e))
	}
}

// EachWithEntity is Each with the entity passed first.
func (v *View2[T1, T2, E]) EachWithEntity(fn func(E, *T1, *T2)) {
	ents := v.driver.Entities()
	for i := 0; i < len(ents); i++ {
		e := ents[i]
		if !v.matches(e) {
			continue
		}
		fn(e, component(v.p1, v.isDriver(0), i, e), component(v.p2, v.isDriver(1), i, e))
	}
}

// Get returns the components of e.
func (v *View2[T1, T2, E]) Get(e E) (*T1, *T2, error) {
	if !v.Contains(e) {
		return nil, nil, v.notInView(e)
	}
	c1, _ := v.p1.TryGet(e)
	c2, _ := v.p2.TryGet(e)
	return c1, c2, nil
}

// Components returns the components of the entity under the cursor.
func (v *View2[T1, T2, E]) Components() (*T1, *T2) {
	return component(v.p1, v.isDriver(0), v.cursor, v.cur),
		component(v.p2, v.isDriver(1), v.cursor, v.cur)
}

// View3 iterates the entities that have T1, T2, T3 and pass every filter.
type View3[T1, T2, T3 any, E Identifier] struct {
	viewBase[E]
	p1 ComponentPool[E, T1]
	p2 ComponentPool[E, T2]
	p3 ComponentPool[E, T3]
}

// NewView3 creates a View over the pools of T1, T2, T3, creating them if needed.
func NewView3[T1, T2, T3 any, E Identifier](w *World[E], filters ...Filter[E]) (*View3[T1, T2, T3, E], error) {
	p1, err := PoolOf[T1](w)
	if err != nil {
		return nil, err
	}
	p2, err := PoolOf[T2](w)
	if err != nil {
		return nil, err
	}
	p3, err := PoolOf[T3](w)
	if err != nil {
		return nil, err
	}
	base, err := newViewBase([]Pool[E]{p1, p2, p3}, filters)
	if err != nil {
		return nil, err
	}
	return &View3[T1, T2, T3, E]{viewBase: base, p1: p1, p2: p2, p3: p3}, nil
}

// Each calls fn with the components of every matching entity, in driver
// order.
func (v *View3[T1, T2, T3, E]) Each(fn func(*T1, *T2, *T3)) {
	ents := v.driver.Entities()
	for i := 0; i < len(ents); i++ {
		e := ents[i]
		if !v.matches(e) {
			continue
		}
		fn(component(v.p1, v.isDriver(0), i, e), component(v.p2, v.isDriver(1), i, e), component(v.p3, v.isDriver(2), i, e))
	}
}

// EachWithEntity is Each with the entity passed first.
func (v *View3[T1, T2, T3, E]) EachWithEntity(fn func(E, *T1, *T2, *T3)) {
	ents := v.driver.Entities()
	for i := 0; i < len(ents); i++ {
		e := ents[i]
		if !v.matches(e) {
			continue
		}
		fn(e, component(v.p1, v.isDriver(0), i, e), component(v.p2, v.isDriver(1), i, e), component(v.p3, v.isDriver(2), i, e))
	}
}

// Get returns the components of e.
func (v *View3[T1, T2, T3, E]) Get(e E) (*T1, *T2, *T3, error) {
	if !v.Contains(e) {
		return nil, nil, nil, v.notInView(e)
	}
	c1, _ := v.p1.TryGet(e)
	c2, _ := v.p2.TryGet(e)
	c3, _ := v.p3.TryGet(e)
	return c1, c2, c3, nil
}

// Components returns the components of the entity under the cursor.
func (v *View3[T1, T2, T3, E]) Components() (*T1, *T2, *T3) {
	return component(v.p1, v.isDriver(0), v.cursor, v.cur),
		component(v.p2, v.isDriver(1), v.cursor, v.cur),
		component(v.p3, v.isDriver(2), v.cursor, v.cur)
}

// View4 iterates the entities that have T1, T2, T3, T4 and pass every filter.
type View4[T1, T2, T3, T4 any, E Identifier] struct {
	viewBase[E]
	p1 ComponentPool[E, T1]
	p2 ComponentPool[E, T2]
	p3 ComponentPool[E, T3]
	p4 ComponentPool[E, T4]
}

// NewView4 creates a View over the pools of T1, T2, T3, T4, creating them if needed.
func NewView4[T1, T2, T3, T4 any, E Identifier](w *World[E], filters ...Filter[E]) (*View4[T1, T2, T3, T4, E], error) {
	p1, err := PoolOf[T1](w)
	if err != nil {
		return nil, err
	}
	p2, err := PoolOf[T2](w)
	if err != nil {
		return nil, err
	}
	p3, err := PoolOf[T3](w)
	if err != nil {
		return nil, err
	}
	p4, err := PoolOf[T4](w)
	if err != nil {
		return nil, err
	}
	base, err := newViewBase([]Pool[E]{p1, p2, p3, p4}, filters)
	if err != nil {
		return nil, err
	}
	return &View4[T1, T2, T3, T4, E]{viewBase: base, p1: p1, p2: p2, p3: p3, p4: p4}, nil
}

// Each calls fn with the components of every matching entity, in driver
// order.
func (v *View4[T1, T2, T3, T4, E]) Each(fn func(*T1, *T2, *T3, *T4)) {
	ents := v.driver.Entities()
	for i := 0; i < len(ents); i++ {
		e := ents[i]
		if !v.matches(e) {
			continue
		}
		fn(component(v.p1, v.isDriver(0), i, e), component(v.p2, v.isDriver(1), i, e), component(v.p3, v.isDriver(2), i, e), component(v.p4, v.isDriver(3), i, e))
	}
}

// EachWithEntity is Each with the entity passed first.
func (v *View4[T1, T2, T3, T4, E]) EachWithEntity(fn func(E, *T1, *T2, *T3, *T4)) {
	ents := v.driver.Entities()
	for i := 0; i < len(ents); i++ {
		e := ents[i]
		if !v.matches(e) {
			continue
		}
		fn(e, component(v.p1, v.isDriver(0), i, e), component(v.p2, v.isDriver(1), i, e), component(v.p3, v.isDriver(2), i, e), component(v.p4, v.isDriver(3), i, e))
	}
}

// Get returns the components of e.
func (v *View4[T1, T2, T3, T4, E]) Get(e E) (*T1, *T2, *T3, *T4, error) {
	if !v.Contains(e) {
		return nil, nil, nil, nil, v.notInView(e)
	}
	c1, _ := v.p1.TryGet(e)
	c2, _ := v.p2.TryGet(e)
	c3, _ := v.p3.TryGet(e)
	c4, _ := v.p4.TryGet(e)
	return c1, c2, c3, c4, nil
}

// Components returns the components of the entity under the cursor.
func (v *View4[T1, T2, T3, T4, E]) Components() (*T1, *T2, *T3, *T4) {
	return component(v.p1, v.isDriver(0), v.cursor, v.cur),
		component(v.p2, v.isDriver(1), v.cursor, v.cur),
		component(v.p3, v.isDriver(2), v.cursor, v.cur),
		component(v.p4, v.isDriver(3), v.cursor, v.cur)
}
