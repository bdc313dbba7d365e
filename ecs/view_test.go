package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestView1VisitsEveryEntityWithComponent(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 5; i++ {
		Add[position](r, Entity(i), position{X: float64(i)})
	}

	visited := map[Entity]float64{}
	NewView1[position](r).Each(func(e Entity, p *position) {
		visited[e] = p.X
	})

	assert.Len(t, visited, 5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, float64(i), visited[Entity(i)])
	}
}

// TestView2JoinsOnSmallestColumn checks that 10 entities with Position,
// 3 of which also have Velocity, yield a view that visits exactly
// those 3.
func TestView2JoinsOnSmallestColumn(t *testing.T) {
	r := NewRegistry()

	for i := 0; i < 10; i++ {
		Add[position](r, Entity(i), position{X: float64(i)})
	}
	for i := 0; i < 3; i++ {
		Add[velocity](r, Entity(i), velocity{DX: float64(i)})
	}

	visitCount := 0
	seen := map[Entity]bool{}
	NewView2[position, velocity](r).Each(func(e Entity, p *position, v *velocity) {
		visitCount++
		seen[e] = true
		assert.Equal(t, p.X, v.DX)
	})

	assert.Equal(t, 3, visitCount)
	for i := 0; i < 3; i++ {
		assert.True(t, seen[Entity(i)])
	}
}

func TestView2MutatesThroughPointers(t *testing.T) {
	r := NewRegistry()
	e := r.CreateEntity()
	Add[position](r, e, position{X: 1})
	Add[velocity](r, e, velocity{DX: 10})

	NewView2[position, velocity](r).Each(func(_ Entity, p *position, v *velocity) {
		p.X += v.DX
	})

	got, _ := Get[position](r, e)
	assert.Equal(t, float64(11), got.X)
}

type mass struct {
	M float64
}

type tag struct{}

func TestView3And4RequireAllComponents(t *testing.T) {
	r := NewRegistry()

	full := r.CreateEntity()
	Add[position](r, full, position{X: 1})
	Add[velocity](r, full, velocity{DX: 1})
	Add[mass](r, full, mass{M: 1})
	Add[tag](r, full, tag{})

	partial := r.CreateEntity()
	Add[position](r, partial, position{X: 2})
	Add[velocity](r, partial, velocity{DX: 2})
	Add[mass](r, partial, mass{M: 2})

	count3 := 0
	NewView3[position, velocity, mass](r).Each(func(e Entity, _ *position, _ *velocity, _ *mass) {
		count3++
	})
	assert.Equal(t, 2, count3)

	count4 := 0
	NewView4[position, velocity, mass, tag](r).Each(func(e Entity, _ *position, _ *velocity, _ *mass, _ *tag) {
		count4++
		assert.Equal(t, full, e)
	})
	assert.Equal(t, 1, count4)
}

func TestViewOnUnregisteredTypeVisitsNothing(t *testing.T) {
	r := NewRegistry()
	RegisterType[position](r)

	visited := 0
	NewView2[position, velocity](r).Each(func(Entity, *position, *velocity) {
		visited++
	})
	assert.Equal(t, 0, visited)
}
