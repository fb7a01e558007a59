package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetEqual(t *testing.T) {
	a := make(Set[int])
	b := make(Set[int])
	assert.True(t, a.Equal(b), "empty sets are equal")

	a.Add(1)
	a.Add(2)
	assert.False(t, a.Equal(b))

	b.Add(2)
	b.Add(1)
	assert.True(t, a.Equal(b))

	b.Add(3)
	assert.False(t, a.Equal(b), "same size is not enough after superset grows")

	b.Remove(3)
	b.Remove(1)
	b.Add(9)
	assert.False(t, a.Equal(b), "equal sizes, different members")
}

func TestSetDifference(t *testing.T) {
	a := make(Set[string])
	a.Add("x")
	a.Add("y")

	b := make(Set[string])
	b.Add("y")

	diff := a.Difference(b)
	assert.True(t, diff.Contains("x"))
	assert.False(t, diff.Contains("y"))
	assert.Len(t, diff, 1)
}
