// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/sparsecs"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := sparsecs.NewWorld[sparsecs.Entity](sparsecs.WithInitialCapacity(numEntities))
		view, err := sparsecs.NewView2[comp1, comp2](w)
		if err != nil {
			panic(err)
		}
		entities := make([]sparsecs.Entity, 0, numEntities)

		for range iters {
			for range numEntities {
				e := w.Create()
				_ = sparsecs.Emplace(w, e, comp1{})
				_ = sparsecs.Emplace(w, e, comp2{V: 1, W: 1})
			}
			entities = entities[:0]
			view.EachWithEntity(func(e sparsecs.Entity, c1 *comp1, c2 *comp2) {
				entities = append(entities, e)
				c1.V += c2.V
				c1.W += c2.W
			})
			for _, e := range entities {
				_ = w.Destroy(e)
			}
		}
	}
}
