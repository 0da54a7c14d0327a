package counters_test

import (
	"testing"

	"github.com/databrickslabs/sandbox/heavybag/counters"
	"github.com/databrickslabs/sandbox/heavybag/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseFollowsCounts(t *testing.T) {
	b := counters.New[string]()
	_, err := b.AddMany("a", 7)
	require.NoError(t, err)
	_, err = b.AddMany("b", 3)
	require.NoError(t, err)

	r := fixtures.Rand(t, 42)
	const draws = 100_000
	picked := counters.New[string]()
	for i := 0; i < draws; i++ {
		e, err := b.Choose(r)
		require.NoError(t, err)
		picked.Add(e)
	}
	assert.Equal(t, int64(draws), picked.Len())
	assert.InDelta(t, 0.7, float64(picked.Count("a"))/draws, 0.02)
	assert.InDelta(t, 0.3, float64(picked.Count("b"))/draws, 0.02)
	assert.Equal(t, int64(10), b.Len())
}

func TestChooseHeavyElement(t *testing.T) {
	b := counters.New[string]()
	_, err := b.AddMany("heavy", 100_000_000)
	require.NoError(t, err)
	b.Add("light")

	r := fixtures.Rand(t, 1)
	for i := 0; i < 1000; i++ {
		e, err := b.Choose(r)
		require.NoError(t, err)
		assert.Equal(t, "heavy", e)
	}
}

func TestChooseSingleElement(t *testing.T) {
	e, err := counters.Of(5).Choose(fixtures.Rand(t, 3))
	require.NoError(t, err)
	assert.Equal(t, 5, e)
}

func TestChooseEmpty(t *testing.T) {
	_, err := counters.New[string]().Choose(fixtures.Rand(t, 3))
	assert.ErrorIs(t, err, counters.ErrEmpty)

	b := counters.Of("x")
	b.Remove("x")
	_, err = b.Choose(fixtures.Rand(t, 3))
	assert.ErrorIs(t, err, counters.ErrEmpty)
}
