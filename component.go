// Package sparsecs is a sparse-set Entity-Component-System runtime.
//
// Entities are generational integer handles. Each component type lives in
// its own pool, and a View iterates the intersection of several pools by
// walking the smallest one. Nothing in the package is synchronized: a World,
// and a Universe with its Worlds, belong to one goroutine at a time.
package sparsecs

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// ComponentID is the stable identifier of a component type: the xxhash64 of
// its qualified type name. It is identical across processes and builds as
// long as the type keeps its package path and name.
type ComponentID uint64

// MemoryOptimized is embedded in a component type to store it in a
// linear-scan pool.
//
//	type Camera struct {
//		sparsecs.MemoryOptimized
//		Zoom float32
//	}
type MemoryOptimized struct{}

func (MemoryOptimized) PoolKind() PoolKind { return PoolMemoryOptimized }

// Flag is embedded in a tag component to store presence only.
type Flag struct{}

func (Flag) PoolKind() PoolKind { return PoolFlag }

// IdentifiedBy is embedded in a component type to bind it to the identifier
// type E. Components without a binding belong to Entity.
type IdentifiedBy[E Identifier] struct{}

func (IdentifiedBy[E]) IdentifierType() reflect.Type { return reflect.TypeFor[E]() }

// PoolKindSelector is implemented by component types that choose their own
// pool kind, usually by embedding MemoryOptimized or Flag.
type PoolKindSelector interface {
	PoolKind() PoolKind
}

// IdentifierBinder is implemented by component types bound to an identifier
// type, usually by embedding IdentifiedBy.
type IdentifierBinder interface {
	IdentifierType() reflect.Type
}

// ComponentInfo describes a component type registered in a World.
type ComponentInfo struct {
	ID   ComponentID
	Name string
	Kind PoolKind
	Size uintptr
}

// componentInfo is the resolved registration of one component type.
type componentInfo struct {
	id         ComponentID
	typ        reflect.Type
	name       string
	kind       PoolKind
	identifier reflect.Type
}

func (c *componentInfo) public() ComponentInfo {
	return ComponentInfo{ID: c.id, Name: c.name, Kind: c.kind, Size: c.typ.Size()}
}

// ComponentName returns the qualified name used to derive the ComponentID
// of T and to key pool overrides in Config.
func ComponentName[T any]() string {
	return typeName(reflect.TypeFor[T]())
}

// ComponentIDOf returns the ComponentID of T.
func ComponentIDOf[T any]() ComponentID {
	return hashName(ComponentName[T]())
}

func typeName(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

func hashName(name string) ComponentID {
	return ComponentID(xxhash.Sum64String(name))
}

// resolveComponent reads the traits of T. Method checks are skipped for
// pointer and interface kinds, whose zero value is nil.
func resolveComponent[T any]() *componentInfo {
	t := reflect.TypeFor[T]()
	name := typeName(t)
	info := &componentInfo{
		id:         hashName(name),
		typ:        t,
		name:       name,
		kind:       PoolDefault,
		identifier: reflect.TypeFor[Entity](),
	}
	if k := t.Kind(); k == reflect.Pointer || k == reflect.Interface {
		return info
	}
	var zero T
	if s, ok := any(zero).(PoolKindSelector); ok {
		info.kind = s.PoolKind()
	}
	if b, ok := any(zero).(IdentifierBinder); ok {
		info.identifier = b.IdentifierType()
	}
	return info
}
