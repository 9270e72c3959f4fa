package sparsecs

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingPool counts membership checks made against the wrapped pool.
type countingPool[E Identifier] struct {
	Pool[E]
	checks int
}

func (p *countingPool[E]) Contains(e E) bool {
	p.checks++
	return p.Pool.Contains(e)
}

func createEntities(t *testing.T, w *World[Entity], n int) []Entity {
	t.Helper()
	out := make([]Entity, n)
	for i := range out {
		out[i] = w.Create()
	}
	return out
}

func TestViewIntersection(t *testing.T) {
	tests := []struct {
		name string
		a    []int
		b    []int
		c    []int
		want []Entity
	}{
		{"B smallest", []int{1, 2, 3, 4, 5}, []int{2, 3, 4}, []int{3, 4, 5}, []Entity{3, 4}},
		{"C smallest", []int{1, 2, 3, 4, 5}, []int{2, 3, 4, 6, 7}, []int{3, 4}, []Entity{3, 4}},
		{"A smallest", []int{3, 4}, []int{0, 2, 3, 4, 6}, []int{3, 4, 5, 7}, []Entity{3, 4}},
		{"disjoint", []int{1}, []int{2}, []int{3}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld[Entity]()
			ents := createEntities(t, w, 8)
			for _, i := range tt.a {
				require.NoError(t, Emplace(w, ents[i], Position{X: float64(i)}))
			}
			for _, i := range tt.b {
				require.NoError(t, Emplace(w, ents[i], Velocity{DX: float64(i)}))
			}
			for _, i := range tt.c {
				require.NoError(t, Emplace(w, ents[i], Health{HP: i}))
			}

			v, err := NewView3[Position, Velocity, Health](w)
			require.NoError(t, err)
			var got []Entity
			v.EachWithEntity(func(e Entity, p *Position, vel *Velocity, h *Health) {
				got = append(got, e)
				assert.Equal(t, float64(e), p.X)
				assert.Equal(t, float64(e), vel.DX)
				assert.Equal(t, int(e), h.HP)
			})
			slices.Sort(got)
			assert.Equal(t, tt.want, got)

			// Same membership when B and C only filter.
			vf, err := NewView1[Position](w, With[Velocity](w), With[Health](w))
			require.NoError(t, err)
			got = slices.Sorted(vf.All())
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, len(tt.want), vf.Count())
		})
	}
}

func TestViewDriverSelection(t *testing.T) {
	w := NewWorld[Entity]()
	ents := createEntities(t, w, 100)
	for i, e := range ents {
		require.NoError(t, Emplace(w, e, Position{}))
		if i < 50 {
			require.NoError(t, Emplace(w, e, Health{HP: i}))
		}
		if i < 3 {
			require.NoError(t, Emplace(w, e, Velocity{}))
		}
	}

	positions, err := PoolOf[Position](w)
	require.NoError(t, err)
	counting := &countingPool[Entity]{Pool: positions}

	v, err := NewView2[Velocity, Health](w, FilterPool[Entity](counting))
	require.NoError(t, err)
	assert.Equal(t, 3, v.Driver().Len())
	assert.Equal(t, PoolDefault, v.Driver().Kind())

	visits := 0
	v.Each(func(*Velocity, *Health) { visits++ })
	assert.Equal(t, 3, visits)
	assert.Equal(t, 3, counting.checks, "only driver entries are checked")

	full, err := NewView3[Position, Health, Velocity](w)
	require.NoError(t, err)
	assert.Equal(t, 3, full.Driver().Len())
}

func TestViewEvenIndices(t *testing.T) {
	w := NewWorld[Entity]()
	ents := createEntities(t, w, 10)
	for i, e := range ents {
		if i%2 == 0 {
			require.NoError(t, Emplace(w, e, Position{X: float64(i), Y: float64(2 * i)}))
		}
	}

	v, err := NewView1[Position](w)
	require.NoError(t, err)
	var got []Entity
	v.EachWithEntity(func(e Entity, p *Position) {
		got = append(got, e)
		assert.Equal(t, Position{X: float64(e), Y: float64(2 * e)}, *p)
	})
	assert.Equal(t, []Entity{0, 2, 4, 6, 8}, got)

	count := 0
	v.Each(func(*Position) { count++ })
	assert.Equal(t, 5, count)
}

func TestViewEachMutates(t *testing.T) {
	w := NewWorld[Entity]()
	for _, e := range createEntities(t, w, 4) {
		require.NoError(t, Emplace(w, e, Position{X: 1}))
		require.NoError(t, Emplace(w, e, Velocity{DX: 2}))
	}
	v, err := NewView2[Position, Velocity](w)
	require.NoError(t, err)
	v.Each(func(p *Position, vel *Velocity) { p.X += vel.DX })

	for e := range v.All() {
		p, err := Query[Position](w, e)
		require.NoError(t, err)
		assert.Equal(t, 3.0, p.X)
	}
}

func TestViewFilterDrives(t *testing.T) {
	w := NewWorld[Entity]()
	ents := createEntities(t, w, 6)
	for i, e := range ents {
		require.NoError(t, Emplace(w, e, Position{X: float64(i)}))
	}
	require.NoError(t, Emplace(w, ents[4], Frozen{}))
	require.NoError(t, Emplace(w, ents[1], Frozen{}))

	v, err := NewView1[Position](w, With[Frozen](w))
	require.NoError(t, err)
	assert.Equal(t, PoolFlag, v.Driver().Kind())

	got := map[Entity]float64{}
	v.EachWithEntity(func(e Entity, p *Position) { got[e] = p.X })
	assert.Equal(t, map[Entity]float64{ents[4]: 4, ents[1]: 1}, got)
}

func TestViewCursor(t *testing.T) {
	w := NewWorld[Entity]()
	ents := createEntities(t, w, 5)
	for i, e := range ents {
		require.NoError(t, Emplace(w, e, Position{X: float64(i)}))
		if i != 2 {
			require.NoError(t, Emplace(w, e, Health{HP: i * 10}))
		}
	}
	v, err := NewView2[Position, Health](w)
	require.NoError(t, err)

	assert.Equal(t, Null[Entity](), v.Entity())
	var seen []Entity
	for v.Next() {
		p, h := v.Components()
		assert.Equal(t, float64(v.Entity()), p.X)
		assert.Equal(t, int(v.Entity())*10, h.HP)
		seen = append(seen, v.Entity())
	}
	assert.ElementsMatch(t, []Entity{0, 1, 3, 4}, seen)
	assert.False(t, v.Next())
	assert.Equal(t, Null[Entity](), v.Entity())

	v.Reset()
	require.True(t, v.Next())
	assert.Equal(t, seen[0], v.Entity())
	assert.ElementsMatch(t, seen, v.Entities())
}

func TestViewGet(t *testing.T) {
	w := NewWorld[Entity]()
	a, b := w.Create(), w.Create()
	require.NoError(t, Emplace(w, a, Position{X: 1}))
	require.NoError(t, Emplace(w, a, Velocity{DX: 2}))
	require.NoError(t, Emplace(w, b, Position{X: 3}))

	v, err := NewView2[Position, Velocity](w)
	require.NoError(t, err)
	assert.True(t, v.Contains(a))
	assert.False(t, v.Contains(b))

	p, vel, err := v.Get(a)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.X)
	assert.Equal(t, 2.0, vel.DX)

	_, _, err = v.Get(b)
	assert.True(t, errors.Is(err, ErrComponentNotOnEntity))
}

func TestViewArityFour(t *testing.T) {
	w := NewWorld[Entity]()
	ents := createEntities(t, w, 3)
	for i, e := range ents {
		require.NoError(t, Emplace(w, e, Position{X: float64(i)}))
		require.NoError(t, Emplace(w, e, Velocity{DX: 1}))
		require.NoError(t, Emplace(w, e, Health{HP: i}))
		if i > 0 {
			require.NoError(t, Emplace(w, e, Frozen{}))
		}
	}
	v, err := NewView4[Position, Velocity, Health, Frozen](w)
	require.NoError(t, err)

	var got []Entity
	v.EachWithEntity(func(e Entity, p *Position, vel *Velocity, h *Health, f *Frozen) {
		require.NotNil(t, f)
		p.X += vel.DX
		got = append(got, e)
	})
	assert.ElementsMatch(t, []Entity{1, 2}, got)

	p, _, h, _, err := v.Get(ents[2])
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.X)
	assert.Equal(t, 2, h.HP)
}

func TestViewRejectsBadFilter(t *testing.T) {
	w := NewWorld[Entity]()
	_, err := NewView1[Position](w, Filter[Entity]{})
	assert.True(t, errors.Is(err, ErrNilFilter))

	_, err = NewView1[Position](w, With[Pos32](w))
	assert.True(t, errors.Is(err, ErrIdentifierMismatch))
}

func TestViewOverEmptyWorld(t *testing.T) {
	w := NewWorld[Entity32]()
	v, err := NewView1[Pos32](w)
	require.NoError(t, err)
	v.Each(func(*Pos32) { t.Fatal("unexpected visit") })
	assert.False(t, v.Next())
	assert.Empty(t, v.Entities())
	assert.Equal(t, 0, v.Count())
}
