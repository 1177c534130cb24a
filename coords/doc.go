// Package coords defines the coordinate model of a cube: typed member
// values and (possibly partial) coordinate tuples.
//
// It uses Go 1.24's unique package to intern string members, significantly
// reducing memory usage for repetitive coordinates.
package coords
