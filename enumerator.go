package cubego

import (
	"sort"

	"github.com/hupe1980/cubego/coords"
)

// Cell is one resolved attribute value of a row. Present is false when no
// recorded fact, partial or full, applies at the row's coordinates; the zero
// Value of an absent cell is meaningless.
type Cell[T comparable] struct {
	Value   T
	Present bool
}

// Row is one point of the cartesian product of all dimension members, with
// one resolved cell per known attribute.
type Row[T comparable] struct {
	Coordinates coords.Coordinates
	Attributes  map[string]Cell[T]
}

// Equal reports whether two rows have equal coordinates and equal resolved
// attribute cells.
func (r Row[T]) Equal(o Row[T]) bool {
	if !r.Coordinates.Equal(o.Coordinates) {
		return false
	}
	if len(r.Attributes) != len(o.Attributes) {
		return false
	}
	for label, cell := range r.Attributes {
		oc, ok := o.Attributes[label]
		if !ok || oc != cell {
			return false
		}
	}
	return true
}

// axis is one enumeration dimension: a name and its members in sorted order.
type axis struct {
	name    string
	members []coords.Value
}

// attrView is the read-only resolution view of one attribute: its facts
// table plus the distinct key shapes ever used to write it, ordered by
// descending specificity (dimension count), ties by shape key. A
// full-coordinate fact therefore always wins over a partial one.
type attrView[T comparable] struct {
	label  string
	facts  map[string]fact[T]
	shapes [][]string
}

// enumerator is an ephemeral snapshot of a cube, fixing the axis order, the
// per-axis member order and the per-attribute shape order for one traversal.
// Cube writes after construction never affect it.
type enumerator[T comparable] struct {
	axes   []axis
	counts []int
	total  int
	attrs  []attrView[T]
}

func newEnumerator[T comparable](c *Cube[T]) *enumerator[T] {
	e := &enumerator[T]{}

	for _, name := range c.Dimensions() {
		members := c.dims[name].SortedValues()
		e.axes = append(e.axes, axis{name: name, members: members})
		e.counts = append(e.counts, len(members))
	}

	e.total = 0
	if len(e.axes) > 0 {
		e.total = 1
		for _, n := range e.counts {
			e.total *= n
		}
	}

	for _, label := range c.Attributes() {
		attr := c.attrs[label]

		seen := make(map[string][]string)
		for _, f := range attr.facts {
			shape := f.coordinates.Shape()
			seen[coords.ShapeKey(shape)] = shape
		}

		keys := make([]string, 0, len(seen))
		for k := range seen {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			a, b := seen[keys[i]], seen[keys[j]]
			if len(a) != len(b) {
				return len(a) > len(b)
			}
			return keys[i] < keys[j]
		})

		shapes := make([][]string, len(keys))
		for i, k := range keys {
			shapes[i] = seen[k]
		}

		e.attrs = append(e.attrs, attrView[T]{
			label:  label,
			facts:  attr.facts,
			shapes: shapes,
		})
	}

	return e
}

// coordinatesAt maps a linear row index to its full coordinate tuple via
// mixed-radix decomposition: the last sorted axis is the least-significant
// digit, so rows come out in lexicographic coordinate order. The mapping is
// a bijection between [0, total) and the cartesian product.
func (e *enumerator[T]) coordinatesAt(index int) coords.Coordinates {
	tuple := make(coords.Coordinates, len(e.axes))
	for d := len(e.axes) - 1; d >= 0; d-- {
		tuple[e.axes[d].name] = e.axes[d].members[index%e.counts[d]]
		index /= e.counts[d]
	}
	return tuple
}

// resolve finds the attribute's value at a full coordinate tuple: the tuple
// is projected onto each recorded key shape in order, and the first
// projection present in the facts table wins. ok is false when no shape
// matches.
func (e *enumerator[T]) resolve(av attrView[T], full coords.Coordinates) (T, bool) {
	for _, shape := range av.shapes {
		key, ok := full.ProjectKey(shape)
		if !ok {
			continue
		}
		if f, ok := av.facts[key]; ok {
			return f.value, true
		}
	}
	var zero T
	return zero, false
}

// rowFor resolves every known attribute at a full coordinate tuple.
func (e *enumerator[T]) rowFor(full coords.Coordinates) Row[T] {
	attrs := make(map[string]Cell[T], len(e.attrs))
	for _, av := range e.attrs {
		v, ok := e.resolve(av, full)
		attrs[av.label] = Cell[T]{Value: v, Present: ok}
	}
	return Row[T]{Coordinates: full, Attributes: attrs}
}

// rowAt produces the row at a linear index.
func (e *enumerator[T]) rowAt(index int) Row[T] {
	return e.rowFor(e.coordinatesAt(index))
}

// contains reports whether the candidate equals the row the enumerator
// resolves at the candidate's coordinates. Rows with tampered attribute
// cells, unknown members or partial coordinates are not contained.
func (e *enumerator[T]) contains(candidate Row[T]) bool {
	if len(candidate.Coordinates) != len(e.axes) {
		return false
	}
	for _, ax := range e.axes {
		member, ok := candidate.Coordinates[ax.name]
		if !ok {
			return false
		}
		found := false
		for _, m := range ax.members {
			if m.Equal(member) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return candidate.Equal(e.rowFor(candidate.Coordinates))
}
