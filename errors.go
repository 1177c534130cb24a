package cubego

import (
	"errors"
	"fmt"

	"github.com/hupe1980/cubego/coords"
)

var (
	// ErrEmptyCoordinates is returned when Set is called with a nil or empty
	// coordinate mapping.
	ErrEmptyCoordinates = errors.New("coordinates must be a non-empty mapping")
)

// ErrOutOfRange indicates a slice window that starts outside the row range.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrOutOfRange struct {
	Start  int
	Length int
	Total  int
	cause  error
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("slice [%d, %d+%d) out of range for %d rows", e.Start, e.Start, e.Length, e.Total)
}

func (e *ErrOutOfRange) Unwrap() error { return e.cause }

// ErrIncompleteCoordinates indicates that a full coordinate tuple was
// required but the given tuple does not cover every known dimension.
type ErrIncompleteCoordinates struct {
	Missing []string
}

func (e *ErrIncompleteCoordinates) Error() string {
	return fmt.Sprintf("coordinates missing dimensions: %v", e.Missing)
}

// ErrUnknownDimension indicates a coordinate naming a dimension the cube has
// never seen.
type ErrUnknownDimension struct {
	Dimension string
}

func (e *ErrUnknownDimension) Error() string {
	return fmt.Sprintf("unknown dimension: %q", e.Dimension)
}

// ErrUnknownMember indicates a coordinate naming a member that was never
// recorded for its dimension.
type ErrUnknownMember struct {
	Dimension string
	Member    coords.Value
}

func (e *ErrUnknownMember) Error() string {
	return fmt.Sprintf("unknown member %s for dimension %q", e.Member.Key(), e.Dimension)
}
