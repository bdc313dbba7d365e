// Command bench profiles the storage and indexing substrate: column
// growth under sustained inserts, swap-remove churn, a two-column
// view join, and an in-place sort, the way
// edwinsyarief-lazyecs/profile/entities profiles entity churn.
//
// Usage:
//
//	go build ./cmd/bench
//	./bench -profile=mem
//	go tool pprof -http=":8000" ./bench mem.pprof
package main

import (
	"flag"
	"fmt"

	"github.com/pkg/profile"

	"dex/ecs"
)

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

func main() {
	entities := flag.Int("entities", 50_000, "number of entities to create")
	rounds := flag.Int("rounds", 20, "number of churn rounds")
	mode := flag.String("profile", "cpu", "profile mode: cpu, mem, or none")
	flag.Parse()

	switch *mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(".")).Stop()
	}

	run(*entities, *rounds)
}

func run(numEntities, rounds int) {
	w := ecs.NewWorld()

	handles := make([]ecs.Handle, numEntities)
	for i := 0; i < numEntities; i++ {
		h := w.Entity()
		h = ecs.SetComponent(h, position{X: float64(i), Y: float64(-i)})
		if i%3 == 0 {
			h = ecs.SetComponent(h, velocity{DX: 1, DY: -1})
		}
		handles[i] = h
	}

	for round := 0; round < rounds; round++ {
		moved := 0
		ecs.Query2[position, velocity](w).Each(func(_ ecs.Entity, p *position, v *velocity) {
			p.X += v.DX
			p.Y += v.DY
			moved++
		})

		// Churn: drop and recreate a slice of entities to exercise
		// swap-remove and id recycling every round.
		for i := 0; i < numEntities/10; i++ {
			handles[i].Destroy()
		}
		for i := 0; i < numEntities/10; i++ {
			h := w.Entity()
			ecs.SetComponent(h, position{X: float64(i)})
			handles[i] = h
		}

		ecs.Sort(w, func(a, b position) bool { return a.X < b.X })
		fmt.Printf("round %d: moved=%d\n", round, moved)
	}
}
