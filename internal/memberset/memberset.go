// Package memberset implements the per-dimension member registry: an
// interning table from member values to dense ordinals, backed by a 32-bit
// Roaring Bitmap of live ordinals.
package memberset

import (
	"iter"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/cubego/coords"
)

// Set is the grow-only member set of one dimension. Members are interned:
// each distinct value gets a dense uint32 ordinal in observation order, and
// the bitmap tracks which ordinals are live. Sets never shrink.
type Set struct {
	rb       *roaring.Bitmap
	ordinals map[string]uint32 // value key -> ordinal
	values   []coords.Value    // ordinal -> value
}

// New creates a new empty member set.
func New() *Set {
	return &Set{
		rb:       roaring.New(),
		ordinals: make(map[string]uint32),
	}
}

// Add unions a member into the set. It returns true when the member was not
// present before.
func (s *Set) Add(v coords.Value) bool {
	key := v.Key()
	if _, ok := s.ordinals[key]; ok {
		return false
	}
	ord := uint32(len(s.values))
	s.ordinals[key] = ord
	s.values = append(s.values, v)
	s.rb.Add(ord)
	return true
}

// Contains checks if a member is in the set.
func (s *Set) Contains(v coords.Value) bool {
	ord, ok := s.ordinals[v.Key()]
	if !ok {
		return false
	}
	return s.rb.Contains(ord)
}

// Cardinality returns the number of distinct members.
func (s *Set) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// Clone returns a deep copy of the set, for the copy-on-write update path.
func (s *Set) Clone() *Set {
	ordinals := make(map[string]uint32, len(s.ordinals))
	for k, v := range s.ordinals {
		ordinals[k] = v
	}
	values := make([]coords.Value, len(s.values))
	copy(values, s.values)
	return &Set{
		rb:       s.rb.Clone(),
		ordinals: ordinals,
		values:   values,
	}
}

// Values returns an iterator over the members in ordinal (observation) order.
func (s *Set) Values() iter.Seq[coords.Value] {
	return func(yield func(coords.Value) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(s.values[it.Next()]) {
				return
			}
		}
	}
}

// SortedValues returns the members sorted by the total order on values.
// This is the per-axis member order used for enumeration.
func (s *Set) SortedValues() []coords.Value {
	out := make([]coords.Value, 0, s.Cardinality())
	for v := range s.Values() {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Compare(out[j]) < 0
	})
	return out
}
