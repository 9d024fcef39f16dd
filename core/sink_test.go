package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlackhole(t *testing.T) {
	hole := NewBlackhole()
	assert.Zero(t, hole.Count())

	hole.Consume(1.5)
	hole.Consume(2.5)
	hole.Consume(3)
	assert.Equal(t, uint64(3), hole.Count())
	assert.NotZero(t, hole.Sum())

	// Order matters to the accumulator.
	other := NewBlackhole()
	other.Consume(3)
	other.Consume(2.5)
	other.Consume(1.5)
	assert.NotEqual(t, hole.Sum(), other.Sum())

	hole.Reset()
	assert.Zero(t, hole.Count())
	assert.Zero(t, hole.Sum())
}

func TestCheckingSink(t *testing.T) {
	hole := NewBlackhole()
	check := NewCheckingSink(hole)

	check.Consume(1)
	check.Consume(float32(math.Inf(1)))
	check.Consume(float32(math.NaN()))

	assert.Equal(t, 3, check.Consumed())
	assert.Equal(t, uint64(3), hole.Count(), "values are still forwarded")
	assert.ErrorIs(t, check.Err(), ErrNonFinite)
	assert.Contains(t, check.Err().Error(), "#1", "first offending value is reported")
}

func TestCheckingSinkFinite(t *testing.T) {
	check := NewCheckingSink(nil)
	for i := 0; i < 10; i++ {
		check.Consume(float32(i) * 0.25)
	}
	assert.NoError(t, check.Err())
	assert.Equal(t, 10, check.Consumed())
}

func BenchmarkBlackholeConsume(b *testing.B) {
	hole := NewBlackhole()
	for i := 0; i < b.N; i++ {
		hole.Consume(float32(i))
	}
}
