package sparsecs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var payloadKinds = []PoolKind{PoolDefault, PoolMemoryOptimized}

func TestPoolKindText(t *testing.T) {
	for _, k := range []PoolKind{PoolDefault, PoolMemoryOptimized, PoolFlag} {
		text, err := k.MarshalText()
		require.NoError(t, err)
		var back PoolKind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
		assert.Equal(t, string(text), k.String())
	}

	k, err := ParsePoolKind(" Memory_Optimized ")
	require.NoError(t, err)
	assert.Equal(t, PoolMemoryOptimized, k)

	_, err = ParsePoolKind("dense")
	assert.True(t, errors.Is(err, ErrUnknownPoolKind))
	assert.Equal(t, "PoolKind(9)", PoolKind(9).String())
}

func TestNewPoolKinds(t *testing.T) {
	assert.IsType(t, &DefaultPool[Entity, int]{}, NewPool[Entity, int](PoolDefault))
	assert.IsType(t, &MemoryPool[Entity, int]{}, NewPool[Entity, int](PoolMemoryOptimized))
	assert.IsType(t, &FlagPool[Entity, int]{}, NewPool[Entity, int](PoolFlag))
	for _, k := range []PoolKind{PoolDefault, PoolMemoryOptimized, PoolFlag} {
		assert.Equal(t, k, NewPool[Entity, int](k).Kind())
	}
}

func TestPoolEmplaceGet(t *testing.T) {
	for _, kind := range payloadKinds {
		t.Run(kind.String(), func(t *testing.T) {
			p := NewPool[Entity, Position](kind)
			e := Construct[Entity](4, 1)
			require.NoError(t, p.Emplace(e, Position{X: 1, Y: 2}))

			got, err := p.Get(e)
			require.NoError(t, err)
			assert.Equal(t, Position{X: 1, Y: 2}, *got)

			got.X = 10
			again, ok := p.TryGet(e)
			require.True(t, ok)
			assert.Equal(t, 10.0, again.X, "Get hands out a reference")

			assert.True(t, errors.Is(p.Emplace(e, Position{}), ErrComponentAlreadyOnEntity))
			assert.True(t, errors.Is(p.Emplace(Null[Entity](), Position{}), ErrInvalidEntity))

			_, err = p.Get(Construct[Entity](4, 2))
			assert.True(t, errors.Is(err, ErrComponentNotOnEntity), "stale handle")
			_, ok = p.TryGet(Entity(5))
			assert.False(t, ok)
		})
	}
}

func TestPoolSwapAndPopIntegrity(t *testing.T) {
	for _, kind := range payloadKinds {
		t.Run(kind.String(), func(t *testing.T) {
			p := NewPool[Entity, int](kind)
			want := make(map[Entity]int)
			for i := range 8 {
				e := Entity(i * 3)
				require.NoError(t, p.Emplace(e, i*100))
				want[e] = i * 100
			}

			for _, doomed := range []Entity{0, 21, 9, 12} {
				before := p.Len()
				require.True(t, p.Remove(doomed))
				delete(want, doomed)
				require.Equal(t, before-1, p.Len())
				require.False(t, p.Contains(doomed))

				for e, v := range want {
					got, err := p.Get(e)
					require.NoError(t, err)
					require.Equal(t, v, *got, "entity %d", e)
				}
				for i, e := range p.Entities() {
					require.Equal(t, want[e], *p.At(i), "lockstep at %d", i)
				}
			}

			assert.False(t, p.Remove(0), "second remove")
			assert.Equal(t, len(want), p.Len())
		})
	}
}

func TestDefaultPoolZeroesVacatedTail(t *testing.T) {
	p := NewDefaultPool[Entity, *int]()
	v1, v2 := 1, 2
	require.NoError(t, p.Emplace(1, &v1))
	require.NoError(t, p.Emplace(2, &v2))
	require.True(t, p.Remove(1))

	tail := p.components[:p.Len()+1][p.Len()]
	assert.Nil(t, tail)
	got, err := p.Get(2)
	require.NoError(t, err)
	assert.Same(t, &v2, *got)
}

func TestMemoryPoolHasNoPages(t *testing.T) {
	p := NewMemoryPool[Entity, int]()
	require.NoError(t, p.Emplace(Entity(1_000_000), 1))
	assert.Equal(t, []Entity{1_000_000}, p.Entities())

	d := NewDefaultPool[Entity, int]()
	require.NoError(t, d.Emplace(Entity(1_000_000), 1))
	assert.Equal(t, 1, d.Set().AllocatedPages())
}

func TestFlagPool(t *testing.T) {
	p := NewFlagPool[Entity, Position]()
	e := Entity(7)
	require.NoError(t, p.Emplace(e, Position{X: 5}))
	assert.True(t, p.Contains(e))

	got, err := p.Get(e)
	require.NoError(t, err)
	assert.Equal(t, Position{}, *got, "payload is not stored")

	got.X = 3
	again, ok := p.TryGet(e)
	require.True(t, ok)
	assert.Equal(t, Position{}, *again, "scratch is reset")

	_, err = p.Get(Entity(8))
	assert.True(t, errors.Is(err, ErrComponentNotOnEntity))

	assert.True(t, p.Remove(e))
	assert.False(t, p.Remove(e))
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 1, p.Set().AllocatedPages())
}

func TestPoolIteration(t *testing.T) {
	for _, kind := range []PoolKind{PoolDefault, PoolMemoryOptimized, PoolFlag} {
		t.Run(kind.String(), func(t *testing.T) {
			p := NewPool[Entity, int](kind)
			for i := range 5 {
				require.NoError(t, p.Emplace(Entity(i), i))
			}

			var each []Entity
			p.Each(func(e Entity, _ *int) { each = append(each, e) })
			assert.Equal(t, []Entity{0, 1, 2, 3, 4}, each)

			var all []Entity
			for e := range p.All() {
				if e == 3 {
					break
				}
				all = append(all, e)
			}
			assert.Equal(t, []Entity{0, 1, 2}, all)

			p.Clear()
			assert.Equal(t, 0, p.Len())
			assert.False(t, p.Contains(0))
			require.NoError(t, p.Emplace(Entity(0), 0))
		})
	}
}

func TestPoolValuesFollowEach(t *testing.T) {
	for _, kind := range payloadKinds {
		t.Run(kind.String(), func(t *testing.T) {
			p := NewPool[Entity, int](kind)
			for i := range 4 {
				require.NoError(t, p.Emplace(Entity(i), i*10))
			}
			p.Each(func(e Entity, v *int) { assert.Equal(t, int(e)*10, *v) })
			for e, v := range p.All() {
				*v++
				got, err := p.Get(e)
				require.NoError(t, err)
				assert.Equal(t, int(e)*10+1, *got)
			}
		})
	}
}
