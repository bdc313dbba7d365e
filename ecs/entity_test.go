package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityAllocatorCreateIsUnique(t *testing.T) {
	a := newEntityAllocator()

	e1 := a.create()
	e2 := a.create()

	assert.NotEqual(t, e1, e2)
	assert.True(t, a.isLive(e1))
	assert.True(t, a.isLive(e2))
}

func TestEntityAllocatorReleaseThenCreateReusesFIFO(t *testing.T) {
	a := newEntityAllocator()

	e0 := a.create()
	e1 := a.create()
	e2 := a.create()

	a.release(e0)
	a.release(e1)

	assert.False(t, a.isLive(e0))
	assert.False(t, a.isLive(e1))
	assert.True(t, a.isLive(e2))

	// FIFO: e0 was released first, so it comes back first.
	reused1 := a.create()
	reused2 := a.create()

	assert.Equal(t, e0, reused1)
	assert.Equal(t, e1, reused2)
}

func TestEntityAllocatorReleaseUnknownIsNoop(t *testing.T) {
	a := newEntityAllocator()
	e := Entity(42)

	assert.NotPanics(t, func() { a.release(e) })
	assert.False(t, a.isLive(e))
}

func TestEntityInvalidSentinel(t *testing.T) {
	assert.False(t, InvalidEntity.IsValid())
	assert.True(t, Entity(0).IsValid())
	assert.Equal(t, Entity(0xFFFFFFFF), InvalidEntity)
}
