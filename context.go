package sparsecs

import (
	"errors"
	"reflect"

	"github.com/rotisserie/eris"
)

// Context is an explicit registry of singletons keyed by type, holding at
// most one value per type. A Universe keeps its Worlds here; callers may
// store their own shared state next to them.
//
// Values are addressed by type through Resolve and Lookup, or by the slot ID
// returned from Add. Freed IDs are reused.
type Context struct {
	items   []any
	types   map[reflect.Type]int
	freeIDs []int
}

// Add stores v and returns its ID. It fails on nil and when a value of the
// same dynamic type is already stored.
func (c *Context) Add(v any) (int, error) {
	if v == nil {
		return -1, eris.New("cannot add nil to context")
	}
	t := reflect.TypeOf(v)
	if c.types == nil {
		c.types = make(map[reflect.Type]int)
	}
	if _, ok := c.types[t]; ok {
		return -1, eris.Wrapf(ErrContextAlreadyExists, "%s", t)
	}
	var id int
	if n := len(c.freeIDs); n > 0 {
		id = c.freeIDs[n-1]
		c.freeIDs = c.freeIDs[:n-1]
		c.items[id] = v
	} else {
		c.items = append(c.items, v)
		id = len(c.items) - 1
	}
	c.types[t] = id
	return id, nil
}

// Has reports whether id holds a value.
func (c *Context) Has(id int) bool {
	return id >= 0 && id < len(c.items) && c.items[id] != nil
}

// Get returns the value at id, or nil.
func (c *Context) Get(id int) any {
	if !c.Has(id) {
		return nil
	}
	return c.items[id]
}

// Remove drops the value at id. The value is not closed.
func (c *Context) Remove(id int) {
	if !c.Has(id) {
		return
	}
	delete(c.types, reflect.TypeOf(c.items[id]))
	c.items[id] = nil
	c.freeIDs = append(c.freeIDs, id)
}

// Len returns the number of stored values.
func (c *Context) Len() int {
	return len(c.types)
}

// Clear drops every value without closing it.
func (c *Context) Clear() {
	clear(c.items)
	c.items = c.items[:0]
	clear(c.types)
	c.freeIDs = c.freeIDs[:0]
}

// Close calls Close on every stored value that has one, newest first, then
// clears the registry. Errors are joined.
func (c *Context) Close() error {
	var errs []error
	for i := len(c.items) - 1; i >= 0; i-- {
		if closer, ok := c.items[i].(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, eris.Wrapf(err, "close %s", reflect.TypeOf(c.items[i])))
			}
		}
	}
	c.Clear()
	return errors.Join(errs...)
}

// Resolve returns the *C stored in c, creating it with create on first use.
// A nil create stores new(C).
func Resolve[C any](c *Context, create func() *C) *C {
	if v, ok := Lookup[C](c); ok {
		return v
	}
	var v *C
	if create != nil {
		v = create()
	}
	if v == nil {
		v = new(C)
	}
	// Lookup missed, so the type is free.
	_, _ = c.Add(v)
	return v
}

// Lookup returns the *C stored in c.
func Lookup[C any](c *Context) (*C, bool) {
	id, ok := c.types[reflect.TypeFor[*C]()]
	if !ok {
		return nil, false
	}
	return c.items[id].(*C), true
}
