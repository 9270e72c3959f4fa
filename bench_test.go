package sparsecs

import (
	"fmt"
	"testing"
)

func benchName(size int) string {
	if size >= 1000000 {
		return fmt.Sprintf("%dM", size/1000000)
	}
	return fmt.Sprintf("%dK", size/1000)
}

func BenchmarkCreateDestroy(b *testing.B) {
	for _, size := range []int{1000, 10000, 100000} {
		b.Run(benchName(size), func(b *testing.B) {
			w := NewWorld[Entity](WithInitialCapacity(size))
			ents := make([]Entity, size)
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				for i := range ents {
					ents[i] = w.Create()
				}
				for _, e := range ents {
					_ = w.Destroy(e)
				}
			}
		})
	}
}

func BenchmarkEmplaceRemove(b *testing.B) {
	for _, kind := range []PoolKind{PoolDefault, PoolMemoryOptimized, PoolFlag} {
		b.Run(kind.String(), func(b *testing.B) {
			size := 1000
			if kind == PoolMemoryOptimized {
				size = 100
			}
			p := NewPool[Entity, Position](kind)
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				for i := range size {
					_ = p.Emplace(Entity(i), Position{X: 1})
				}
				for i := range size {
					p.Remove(Entity(i))
				}
			}
		})
	}
}

func BenchmarkQuery(b *testing.B) {
	w := NewWorld[Entity]()
	ents := make([]Entity, 10000)
	for i := range ents {
		ents[i] = w.Create()
		_ = Emplace(w, ents[i], Position{X: float64(i)})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		for _, e := range ents {
			p, _ := Query[Position](w, e)
			p.X++
		}
	}
}

func BenchmarkView2Each(b *testing.B) {
	for _, size := range []int{1000, 10000, 100000} {
		b.Run(benchName(size), func(b *testing.B) {
			w := NewWorld[Entity](WithInitialCapacity(size))
			for range size {
				e := w.Create()
				_ = Emplace(w, e, Position{})
				_ = Emplace(w, e, Velocity{DX: 1, DY: 1})
			}
			v, err := NewView2[Position, Velocity](w)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				v.Each(func(p *Position, vel *Velocity) {
					p.X += vel.DX
					p.Y += vel.DY
				})
			}
		})
	}
}

func BenchmarkView3Cursor(b *testing.B) {
	size := 100000
	w := NewWorld[Entity](WithInitialCapacity(size))
	for i := range size {
		e := w.Create()
		_ = Emplace(w, e, Position{})
		_ = Emplace(w, e, Velocity{DX: 1})
		if i%10 == 0 {
			_ = Emplace(w, e, Health{HP: 1})
		}
	}
	v, err := NewView3[Position, Velocity, Health](w)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		v.Reset()
		for v.Next() {
			p, vel, _ := v.Components()
			p.X += vel.DX
		}
	}
}

func BenchmarkEventBusPublishOneHandler(b *testing.B) {
	bus := &EventBus{}
	Subscribe(bus, func(e TestEvent) {})
	event := TestEvent{Value: 42}
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		Publish(bus, event)
	}
}

func BenchmarkContextResolve(b *testing.B) {
	c := &Context{}
	Resolve[Position](c, nil)
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = Resolve[Position](c, nil)
	}
}
