// Profiling:
// go build ./profile/view
// go tool pprof -http=":8000" -nodefraction=0.001 ./view cpu.pprof

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type tag struct {
	sparsecs.Flag
}

func main() {
	count := 50
	iters := 1000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := sparsecs.NewWorld[sparsecs.Entity](sparsecs.WithInitialCapacity(numEntities))
		for i := range numEntities {
			e := w.Create()
			_ = sparsecs.Emplace(w, e, comp1{})
			_ = sparsecs.Emplace(w, e, comp2{V: 1, W: 1})
			_ = sparsecs.Emplace(w, e, comp3{})
			_ = sparsecs.Emplace(w, e, comp4{})
			if i%4 == 0 {
				_ = sparsecs.Emplace(w, e, tag{})
			}
		}
		view, err := sparsecs.NewView4[comp1, comp2, comp3, comp4](w, sparsecs.With[tag](w))
		if err != nil {
			panic(err)
		}

		for range iters {
			view.Each(func(c1 *comp1, c2 *comp2, _ *comp3, _ *comp4) {
				c1.V += c2.V
				c1.W += c2.W
			})
		}
	}
}
