// Package cubego provides an embedded, in-memory sparse attribute cube for Go.
//
// A cube records attribute values against partial or full coordinate tuples
// spanning named dimensions, and resolves them later for every point of the
// cartesian product of all known dimension members. Writes are
// value-semantic: Set returns a new cube and never mutates the old one, so
// readers can keep scanning an older snapshot while newer cubes are built.
//
// # Quick Start
//
//	cube := cubego.New[int]()
//	cube, _ = cube.Set(coords.Coordinates{
//	    "region":  coords.String("US"),
//	    "product": coords.String("A"),
//	}, "price", 10)
//	cube, _ = cube.Set(coords.Coordinates{
//	    "product": coords.String("B"),
//	}, "price", 5)
//
//	cube.Count() // rows in the cartesian product
//
//	for row := range cube.Scan().Rows() {
//	    fmt.Println(row.Coordinates, row.Attributes)
//	}
//
// # Resolution
//
// A query row picks up the most specific recorded fact that covers it:
// candidate key shapes are tried in descending specificity, so a
// full-coordinate fact always wins over a partial fallback. An attribute
// with no applicable fact resolves to an absent cell, which is distinct
// from every stored value.
//
// # Key Features
//
//   - Value-semantic copy-on-write updates (snapshot isolation for free)
//   - Closed-form row count (never enumerates to count)
//   - Lazy, randomly-sliceable row enumeration via iter.Seq
//   - Resumable cursors with explicit halt
//   - Deterministic axis, member, and shape ordering
//   - Interned members backed by Roaring Bitmaps
package cubego
