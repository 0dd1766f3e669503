package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAddGetRemove(t *testing.T) {
	var a arena[int]
	h1 := a.Add(10)
	h2 := a.Add(20)
	h3 := a.Add(30)
	require.Equal(t, 3, a.Len())

	v, ok := a.Get(h2)
	require.True(t, ok)
	assert.Equal(t, 20, *v)

	require.True(t, a.Remove(h2))
	assert.False(t, a.Remove(h2), "second remove is a no-op")
	assert.Equal(t, 2, a.Len())

	_, ok = a.Get(h2)
	assert.False(t, ok)
	assert.Equal(t, []Handle{h1, h3}, a.Handles())
}

func TestArenaRemoveDuringIteration(t *testing.T) {
	var a arena[int]
	for i := range 5 {
		a.Add(i)
	}

	var seen []int
	for h, v := range a.All() {
		seen = append(seen, *v)
		if *v%2 == 0 {
			a.Remove(h)
		}
		if *v == 1 {
			// Removing a later entity skips it.
			a.Remove(h + 2)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 4}, seen)
	assert.Equal(t, 1, a.Len())
}

func TestArenaAddDuringIterationNotVisited(t *testing.T) {
	var a arena[int]
	a.Add(1)
	a.Add(2)

	visits := 0
	for range a.All() {
		visits++
		a.Add(99)
	}
	assert.Equal(t, 2, visits)
	assert.Equal(t, 4, a.Len())
}

func TestArenaCompactKeepsOrderAndHandles(t *testing.T) {
	var a arena[string]
	ha := a.Add("a")
	hb := a.Add("b")
	hc := a.Add("c")
	a.Remove(hb)
	a.Compact()

	assert.Equal(t, []Handle{ha, hc}, a.Handles())
	v, ok := a.Get(hc)
	require.True(t, ok)
	assert.Equal(t, "c", *v)
}

func TestArenaClearInvalidatesHandles(t *testing.T) {
	var a arena[int]
	old := a.Add(1)
	a.Clear()
	assert.Equal(t, 0, a.Len())

	fresh := a.Add(2)
	assert.NotEqual(t, old, fresh)
	_, ok := a.Get(old)
	assert.False(t, ok)
}
