package cubego

import (
	"context"
	"sort"
	"time"

	"github.com/hupe1980/cubego/coords"
	"github.com/hupe1980/cubego/internal/memberset"
)

// fact is one recorded value, keyed in the attribute's table by the exact
// canonical key of the coordinates it was written with.
type fact[T comparable] struct {
	coordinates coords.Coordinates
	value       T
}

// attribute is the facts table of one attribute label.
type attribute[T comparable] struct {
	facts map[string]fact[T]
}

func newAttribute[T comparable]() *attribute[T] {
	return &attribute[T]{facts: make(map[string]fact[T])}
}

func (a *attribute[T]) clone() *attribute[T] {
	facts := make(map[string]fact[T], len(a.facts))
	for k, f := range a.facts {
		facts[k] = f
	}
	return &attribute[T]{facts: facts}
}

// Fact is one write for SetMany: a coordinate tuple, an attribute label and
// the value to record.
type Fact[T comparable] struct {
	Coordinates coords.Coordinates
	Label       string
	Value       T
}

// Cube is an in-memory, multi-dimensional sparse attribute store.
//
// Values are written against partial or full coordinate tuples and later
// resolved for every point of the cartesian product of all known dimension
// members (see Scan). A Cube is a value: Set and SetMany return a new Cube
// and never mutate the receiver, so readers may keep enumerating an older
// cube while newer ones are produced.
type Cube[T comparable] struct {
	dims  map[string]*memberset.Set
	attrs map[string]*attribute[T]

	logger  *Logger
	metrics MetricsCollector
}

// New returns an empty cube: no dimensions, no attributes.
func New[T comparable](optFns ...Option) *Cube[T] {
	opts := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Cube[T]{
		dims:    make(map[string]*memberset.Set),
		attrs:   make(map[string]*attribute[T]),
		logger:  opts.logger,
		metrics: opts.metrics,
	}
}

// Set records value under the exact coordinates for the given attribute
// label and returns the updated cube. The receiver is left unchanged;
// callers must use the returned value.
//
// Every dimension named in coordinates has the corresponding member unioned
// into its member set. Writing the same coordinates and label again
// overwrites the prior value. A nil or empty coordinate mapping is rejected
// with ErrEmptyCoordinates and no new cube is produced.
func (c *Cube[T]) Set(coordinates coords.Coordinates, label string, value T) (*Cube[T], error) {
	start := time.Now()

	next, err := c.set(coordinates, label, value)

	c.metrics.RecordSet(time.Since(start), err)
	c.logger.LogSet(context.Background(), label, len(coordinates), err)

	return next, err
}

func (c *Cube[T]) set(coordinates coords.Coordinates, label string, value T) (*Cube[T], error) {
	if len(coordinates) == 0 {
		return nil, ErrEmptyCoordinates
	}

	next := c.shallowClone()

	for name, member := range coordinates {
		set, ok := next.dims[name]
		switch {
		case !ok:
			set = memberset.New()
			set.Add(member)
			next.dims[name] = set
		case !set.Contains(member):
			// Copy-on-write: only dimensions gaining a member are cloned.
			set = set.Clone()
			set.Add(member)
			next.dims[name] = set
		}
	}

	attr, ok := next.attrs[label]
	if ok {
		attr = attr.clone()
	} else {
		attr = newAttribute[T]()
	}
	attr.facts[coordinates.Key()] = fact[T]{
		coordinates: coordinates.Clone(),
		value:       value,
	}
	next.attrs[label] = attr

	return next, nil
}

// SetMany records a batch of facts and returns a single updated cube.
//
// Validation is all-or-nothing: if any fact has empty coordinates, no cube
// is produced.
func (c *Cube[T]) SetMany(facts []Fact[T]) (*Cube[T], error) {
	start := time.Now()

	next, err := c.setMany(facts)

	c.metrics.RecordSetMany(len(facts), time.Since(start), err)
	c.logger.LogSetMany(context.Background(), len(facts), err)

	return next, err
}

func (c *Cube[T]) setMany(facts []Fact[T]) (*Cube[T], error) {
	for _, f := range facts {
		if len(f.Coordinates) == 0 {
			return nil, ErrEmptyCoordinates
		}
	}

	next := c
	for _, f := range facts {
		var err error
		next, err = next.set(f.Coordinates, f.Label, f.Value)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}

// Count returns the number of rows in the cube: the product of the member
// cardinalities of all dimensions, or 0 when no dimension exists yet. It is
// closed-form and never enumerates rows.
func (c *Cube[T]) Count() int {
	if len(c.dims) == 0 {
		return 0
	}
	count := 1
	for _, set := range c.dims {
		count *= set.Cardinality()
	}
	return count
}

// Dimensions returns the known dimension names in sorted order.
func (c *Cube[T]) Dimensions() []string {
	names := make([]string, 0, len(c.dims))
	for name := range c.dims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Members returns the recorded members of a dimension, sorted by the total
// order on values. It returns nil for an unknown dimension.
func (c *Cube[T]) Members(dimension string) []coords.Value {
	set, ok := c.dims[dimension]
	if !ok {
		return nil
	}
	return set.SortedValues()
}

// Attributes returns the known attribute labels in sorted order.
func (c *Cube[T]) Attributes() []string {
	labels := make([]string, 0, len(c.attrs))
	for label := range c.attrs {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// At resolves the row at a single full coordinate tuple without scanning.
//
// The tuple must name exactly the known dimensions with recorded members;
// otherwise an *ErrIncompleteCoordinates, *ErrUnknownDimension or
// *ErrUnknownMember is returned.
func (c *Cube[T]) At(coordinates coords.Coordinates) (Row[T], error) {
	start := time.Now()

	row, err := c.at(coordinates)

	c.metrics.RecordResolve(time.Since(start), err)

	return row, err
}

func (c *Cube[T]) at(coordinates coords.Coordinates) (Row[T], error) {
	for name, member := range coordinates {
		set, ok := c.dims[name]
		if !ok {
			return Row[T]{}, &ErrUnknownDimension{Dimension: name}
		}
		if !set.Contains(member) {
			return Row[T]{}, &ErrUnknownMember{Dimension: name, Member: member}
		}
	}
	if len(coordinates) != len(c.dims) {
		var missing []string
		for _, name := range c.Dimensions() {
			if _, ok := coordinates[name]; !ok {
				missing = append(missing, name)
			}
		}
		return Row[T]{}, &ErrIncompleteCoordinates{Missing: missing}
	}

	return newEnumerator(c).rowFor(coordinates.Clone()), nil
}

// shallowClone copies the top-level registries; dimension sets and attribute
// tables are shared until a write touches them.
func (c *Cube[T]) shallowClone() *Cube[T] {
	dims := make(map[string]*memberset.Set, len(c.dims))
	for name, set := range c.dims {
		dims[name] = set
	}
	attrs := make(map[string]*attribute[T], len(c.attrs))
	for label, attr := range c.attrs {
		attrs[label] = attr
	}
	return &Cube[T]{
		dims:    dims,
		attrs:   attrs,
		logger:  c.logger,
		metrics: c.metrics,
	}
}
