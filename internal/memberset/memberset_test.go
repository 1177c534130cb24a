package memberset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cubego/coords"
)

func TestSetAdd(t *testing.T) {
	s := New()

	assert.True(t, s.Add(coords.String("US")))
	assert.True(t, s.Add(coords.String("EU")))
	assert.False(t, s.Add(coords.String("US")), "re-adding must be a no-op")

	assert.Equal(t, 2, s.Cardinality())
	assert.True(t, s.Contains(coords.String("EU")))
	assert.False(t, s.Contains(coords.String("APAC")))
}

func TestSetSortedValues(t *testing.T) {
	s := New()
	s.Add(coords.String("US"))
	s.Add(coords.String("APAC"))
	s.Add(coords.String("EU"))

	got := s.SortedValues()
	require.Len(t, got, 3)
	assert.Equal(t, "APAC", got[0].StringValue())
	assert.Equal(t, "EU", got[1].StringValue())
	assert.Equal(t, "US", got[2].StringValue())
}

func TestSetSortedValuesNumeric(t *testing.T) {
	s := New()
	s.Add(coords.Int(10))
	s.Add(coords.Int(-3))
	s.Add(coords.Int(7))

	got := s.SortedValues()
	require.Len(t, got, 3)

	want := []int64{-3, 7, 10}
	for i, v := range got {
		n, ok := v.AsInt64()
		require.True(t, ok)
		assert.Equal(t, want[i], n)
	}
}

func TestSetClone(t *testing.T) {
	s := New()
	s.Add(coords.String("US"))

	clone := s.Clone()
	clone.Add(coords.String("EU"))

	assert.Equal(t, 1, s.Cardinality(), "clone must not leak into original")
	assert.Equal(t, 2, clone.Cardinality())
	assert.False(t, s.Contains(coords.String("EU")))
}

func TestSetValuesEarlyStop(t *testing.T) {
	s := New()
	s.Add(coords.Int(1))
	s.Add(coords.Int(2))
	s.Add(coords.Int(3))

	seen := 0
	for range s.Values() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}
