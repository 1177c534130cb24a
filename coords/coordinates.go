package coords

import (
	"sort"
	"strings"
)

// Coordinates is a (possibly partial) mapping from dimension name to one
// member value. A partial tuple names a strict subset of a cube's
// dimensions; a full tuple names all of them.
type Coordinates map[string]Value

// Clone creates a copy of the coordinates.
//
// This is the safe default to prevent external mutation after Set().
func (c Coordinates) Clone() Coordinates {
	if c == nil {
		return nil
	}
	clone := make(Coordinates, len(c))
	for k, v := range c {
		clone[k] = v
	}
	return clone
}

// Shape returns the sorted dimension names of the tuple. Two tuples with the
// same Shape address the same projection of the cube, regardless of which
// members they name.
func (c Coordinates) Shape() []string {
	dims := make([]string, 0, len(c))
	for d := range c {
		dims = append(dims, d)
	}
	sort.Strings(dims)
	return dims
}

// Key returns a canonical string representation for use as an exact fact-table
// key: sorted "dim=valueKey" pairs. Two tuples have equal keys iff they name
// the same dimensions with equal members.
func (c Coordinates) Key() string {
	dims := c.Shape()
	var sb strings.Builder
	for i, d := range dims {
		if i > 0 {
			sb.WriteByte(0x1f)
		}
		sb.WriteString(d)
		sb.WriteByte('=')
		sb.WriteString(c[d].Key())
	}
	return sb.String()
}

// ShapeKey returns the canonical key of a shape (sorted dimension names).
func ShapeKey(dims []string) string {
	return strings.Join(dims, "\x1f")
}

// Project returns the sub-tuple of c restricted to the given dimension
// names. ok is false when c does not cover every requested dimension.
func (c Coordinates) Project(dims []string) (Coordinates, bool) {
	p := make(Coordinates, len(dims))
	for _, d := range dims {
		v, exists := c[d]
		if !exists {
			return nil, false
		}
		p[d] = v
	}
	return p, true
}

// ProjectKey computes the canonical Key of the projection of c onto dims
// without allocating the intermediate tuple. dims must be sorted.
func (c Coordinates) ProjectKey(dims []string) (string, bool) {
	var sb strings.Builder
	for i, d := range dims {
		v, exists := c[d]
		if !exists {
			return "", false
		}
		if i > 0 {
			sb.WriteByte(0x1f)
		}
		sb.WriteString(d)
		sb.WriteByte('=')
		sb.WriteString(v.Key())
	}
	return sb.String(), true
}

// Equal reports whether two tuples name the same dimensions with equal
// members.
func (c Coordinates) Equal(o Coordinates) bool {
	if len(c) != len(o) {
		return false
	}
	for d, v := range c {
		ov, exists := o[d]
		if !exists || !v.Equal(ov) {
			return false
		}
	}
	return true
}
