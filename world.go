package sparsecs

import (
	"reflect"
	"slices"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// poolEntry is the registration of one component type in a World.
type poolEntry[E Identifier] struct {
	info  *componentInfo
	pool  Pool[E]
	typed any // ComponentPool[E, T]
}

// World owns the entities of one identifier type and one pool per component
// type used with it.
//
// The entity slots double as an embedded free list: a live slot holds the
// entity itself, a free slot holds the index of the next free slot together
// with the version its next occupant will get. The list ends at the null
// index.
//
// A World is not safe for concurrent use.
type World[E Identifier] struct {
	entities  []E
	freeHead  E
	alive     int
	pools     map[ComponentID]*poolEntry[E]
	byType    map[reflect.Type]*poolEntry[E]
	poolList  []*poolEntry[E]
	overrides map[string]PoolKind
	events    EventBus
	logger    zerolog.Logger
}

// NewWorld creates an empty World.
//
// Parameters:
//   - opts: Logger, initial capacity and pool kind overrides.
//
// Returns:
//   - The newly created World.
func NewWorld[E Identifier](opts ...Option) *World[E] {
	o := newOptions(opts)
	return newWorld[E](o)
}

func newWorld[E Identifier](o options) *World[E] {
	w := &World[E]{
		entities:  make([]E, 0, o.initialCapacity),
		freeHead:  IndexMask[E](),
		pools:     make(map[ComponentID]*poolEntry[E]),
		byType:    make(map[reflect.Type]*poolEntry[E]),
		overrides: o.pools,
		logger:    o.logger.With().Str("identifier", reflect.TypeFor[E]().String()).Logger(),
	}
	return w
}

// Create returns a new live entity, reusing a destroyed index when one is
// free. It panics when every index has been handed out; use TryCreate to
// get an error instead.
func (w *World[E]) Create() E {
	e, err := w.TryCreate()
	if err != nil {
		panic(err)
	}
	return e
}

// TryCreate is Create returning ErrIndexSpaceExhausted instead of panicking.
func (w *World[E]) TryCreate() (E, error) {
	var e E
	if w.freeHead != IndexMask[E]() {
		idx := w.freeHead
		slot := w.entities[int(idx)]
		w.freeHead = IndexOf(slot)
		e = Construct(idx, VersionOf(slot))
		w.entities[int(idx)] = e
	} else {
		n := E(len(w.entities))
		if n >= IndexMask[E]() {
			return Null[E](), eris.Wrapf(ErrIndexSpaceExhausted, "%d indices in use", n)
		}
		e = Construct(n, 0)
		w.entities = append(w.entities, e)
	}
	w.alive++
	Publish(&w.events, EntityCreated[E]{Entity: e})
	return e, nil
}

// Destroy removes e from every pool, returns its index to the free list and
// bumps the stored version so that e and its copies go stale.
func (w *World[E]) Destroy(e E) error {
	if !w.Alive(e) {
		return eris.Wrapf(ErrEntityNotAlive, "destroy %s", FormatEntity(e))
	}
	for _, pe := range w.poolList {
		pe.pool.Remove(e)
	}
	w.release(e)
	Publish(&w.events, EntityDestroyed[E]{Entity: e})
	return nil
}

func (w *World[E]) release(e E) {
	idx := IndexOf(e)
	w.entities[int(idx)] = Construct(w.freeHead, VersionOf(NextVersion(e)))
	w.freeHead = idx
	w.alive--
}

// Alive reports whether e is the current occupant of its index.
func (w *World[E]) Alive(e E) bool {
	if !IsValid(e) {
		return false
	}
	idx := uint64(IndexOf(e))
	return idx < uint64(len(w.entities)) && w.entities[idx] == e
}

// Len returns the number of live entities.
func (w *World[E]) Len() int { return w.alive }

// Each calls fn for every live entity in index order.
func (w *World[E]) Each(fn func(E)) {
	for i, slot := range w.entities {
		if IndexOf(slot) == E(i) {
			fn(slot)
		}
	}
}

// Clear destroys every entity without publishing EntityDestroyed. Pools stay
// registered and versions keep counting, so handles from before Clear are
// stale afterwards.
func (w *World[E]) Clear() {
	for _, pe := range w.poolList {
		pe.pool.Clear()
	}
	for i := len(w.entities) - 1; i >= 0; i-- {
		if slot := w.entities[i]; IndexOf(slot) == E(i) {
			w.release(slot)
		}
	}
}

// Components returns the registered component types sorted by ID.
func (w *World[E]) Components() []ComponentInfo {
	out := make([]ComponentInfo, 0, len(w.poolList))
	for _, pe := range w.poolList {
		out = append(out, pe.info.public())
	}
	slices.SortFunc(out, func(a, b ComponentInfo) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

// ComponentsOf returns the components attached to e in registration order.
func (w *World[E]) ComponentsOf(e E) []ComponentInfo {
	var out []ComponentInfo
	for _, pe := range w.poolList {
		if pe.pool.Contains(e) {
			out = append(out, pe.info.public())
		}
	}
	return out
}

// Events returns the bus carrying EntityCreated and EntityDestroyed.
func (w *World[E]) Events() *EventBus { return &w.events }

// Logger returns the logger of the World.
func (w *World[E]) Logger() *zerolog.Logger { return &w.logger }

// lookup returns the registration of type t, or nil.
func (w *World[E]) lookup(t reflect.Type) *poolEntry[E] {
	return w.byType[t]
}

// register creates the pool for the component described by info.
func (w *World[E]) register(info *componentInfo, build func(PoolKind, zerolog.Logger) (Pool[E], any)) (*poolEntry[E], error) {
	if want := reflect.TypeFor[E](); info.identifier != want {
		return nil, eris.Wrapf(ErrIdentifierMismatch, "component %s is bound to %s, world uses %s",
			info.name, info.identifier, want)
	}
	if other, ok := w.pools[info.id]; ok {
		return nil, eris.Wrapf(ErrComponentIDCollision, "%s and %s share id %#x",
			info.name, other.info.name, uint64(info.id))
	}
	if kind, ok := w.overrides[info.name]; ok {
		info.kind = kind
	}
	pool, typed := build(info.kind, w.logger)
	pe := &poolEntry[E]{info: info, pool: pool, typed: typed}
	w.pools[info.id] = pe
	w.byType[info.typ] = pe
	w.poolList = append(w.poolList, pe)
	w.logger.Debug().
		Str("component", info.name).
		Str("pool", info.kind.String()).
		Uint64("component_id", uint64(info.id)).
		Msg("pool created")
	return pe, nil
}
