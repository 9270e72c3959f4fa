package sparsecs

import (
	"iter"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// PoolKind selects the storage strategy of a component pool.
type PoolKind uint8

const (
	// PoolDefault pairs a SparseSet with an index-aligned component array:
	// O(1) lookup.
	PoolDefault PoolKind = iota
	// PoolMemoryOptimized keeps plain packed arrays searched linearly. Meant
	// for components attached to very few entities.
	PoolMemoryOptimized
	// PoolFlag tracks presence only and stores no payload.
	PoolFlag
)

var poolKindNames = [...]string{
	PoolDefault:         "default",
	PoolMemoryOptimized: "memory_optimized",
	PoolFlag:            "flag",
}

func (k PoolKind) String() string {
	if int(k) < len(poolKindNames) {
		return poolKindNames[k]
	}
	return "PoolKind(" + strconv.Itoa(int(k)) + ")"
}

// ParsePoolKind parses the text form of a PoolKind.
func ParsePoolKind(s string) (PoolKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range poolKindNames {
		if n == name {
			return PoolKind(k), nil
		}
	}
	return PoolDefault, eris.Wrapf(ErrUnknownPoolKind, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k PoolKind) MarshalText() ([]byte, error) {
	if int(k) >= len(poolKindNames) {
		return nil, eris.Wrapf(ErrUnknownPoolKind, "%d", k)
	}
	return []byte(poolKindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PoolKind) UnmarshalText(text []byte) error {
	parsed, err := ParsePoolKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Pool is the type-erased view of a component pool. The World holds every
// pool through this interface so it can destroy entities without knowing
// component types.
type Pool[E Identifier] interface {
	Contains(e E) bool
	// Remove detaches e and reports whether it was present.
	Remove(e E) bool
	Len() int
	// Entities returns the packed entity array. It is owned by the pool.
	Entities() []E
	Kind() PoolKind
	Clear()
}

// ComponentPool stores values of one component type.
//
// Pointers returned by Get, TryGet and At stay valid until the next Emplace
// or Remove on the same pool.
type ComponentPool[E Identifier, T any] interface {
	Pool[E]
	// Emplace attaches value to e. It fails if e already holds a value.
	Emplace(e E, value T) error
	// Get returns the value attached to e or ErrComponentNotOnEntity.
	Get(e E) (*T, error)
	TryGet(e E) (*T, bool)
	// At returns the value at packed position i, aligned with Entities()[i].
	At(i int) *T
	Each(fn func(E, *T))
	All() iter.Seq2[E, *T]
}

// NewPool creates a standalone pool of the given kind.
func NewPool[E Identifier, T any](kind PoolKind) ComponentPool[E, T] {
	return newPool[E, T](kind, zerolog.Nop())
}

func newPool[E Identifier, T any](kind PoolKind, logger zerolog.Logger) ComponentPool[E, T] {
	switch kind {
	case PoolMemoryOptimized:
		return &MemoryPool[E, T]{logger: logger}
	case PoolFlag:
		return &FlagPool[E, T]{logger: logger}
	default:
		return &DefaultPool[E, T]{logger: logger}
	}
}

func notOnEntity[E Identifier](e E) error {
	return eris.Wrapf(ErrComponentNotOnEntity, "entity %s", FormatEntity(e))
}

func logRemoval[E Identifier](logger *zerolog.Logger, kind PoolKind, e E) {
	logger.Debug().Str("pool", kind.String()).Str("entity", FormatEntity(e)).Msg("component removed")
}
