// Package cubego provides an embedded sparse attribute cube for Go.
//
// This file implements a fluent scan API for enumerating cube rows.
package cubego

import (
	"context"
	"iter"
	"time"

	"golang.org/x/sync/errgroup"
)

// Scan creates a new fluent scan builder over a snapshot of the cube.
//
// The snapshot is taken when the first terminal operation (Rows, Cursor,
// Slice, Collect, Contains) runs; writes producing newer cube values never
// affect a scan in progress.
//
// Example:
//
//	for row := range cube.Scan().Rows() {
//	    process(row)
//	}
//
//	// Or a bounded window:
//	rows, err := cube.Scan().Slice(100, 10)
func (c *Cube[T]) Scan() *ScanBuilder[T] {
	return &ScanBuilder[T]{cube: c}
}

// ScanBuilder is a fluent builder for constructing row scans.
type ScanBuilder[T comparable] struct {
	cube        *Cube[T]
	filter      func(Row[T]) bool
	parallelism int
}

// Filter sets a row predicate applied lazily during streaming and
// materialization. Rows failing the predicate are skipped; index-based
// windows (Slice) are taken over the full sequence before filtering.
func (sb *ScanBuilder[T]) Filter(fn func(Row[T]) bool) *ScanBuilder[T] {
	sb.filter = fn
	return sb
}

// Parallel sets the number of workers Collect uses to materialize rows.
// Values below 2 keep materialization sequential. Streaming (Rows, Cursor)
// is always sequential.
func (sb *ScanBuilder[T]) Parallel(n int) *ScanBuilder[T] {
	sb.parallelism = n
	return sb
}

// Rows returns a lazy iterator over the rows of the snapshot in increasing
// index order. Breaking out of the range loop stops row production; rows
// past the stopping point are never computed.
func (sb *ScanBuilder[T]) Rows() iter.Seq[Row[T]] {
	enum := newEnumerator(sb.cube)
	return func(yield func(Row[T]) bool) {
		for i := 0; i < enum.total; i++ {
			row := enum.rowAt(i)
			if sb.filter != nil && !sb.filter(row) {
				continue
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Cursor returns a resumable cursor positioned at the first row. The filter
// does not apply to cursors; they traverse the raw row sequence.
func (sb *ScanBuilder[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{enum: newEnumerator(sb.cube)}
}

// Slice produces the contiguous window of length rows starting at start,
// without materializing the rest of the sequence.
//
// A negative start or length, or start beyond the row count, yields an
// *ErrOutOfRange. A window overrunning the end is clamped to the remaining
// rows.
func (sb *ScanBuilder[T]) Slice(start, length int) ([]Row[T], error) {
	begin := time.Now()

	enum := newEnumerator(sb.cube)
	if start < 0 || length < 0 || start > enum.total {
		return nil, &ErrOutOfRange{Start: start, Length: length, Total: enum.total}
	}
	if rest := enum.total - start; length > rest {
		length = rest
	}

	rows := make([]Row[T], 0, length)
	for i := start; i < start+length; i++ {
		row := enum.rowAt(i)
		if sb.filter != nil && !sb.filter(row) {
			continue
		}
		rows = append(rows, row)
	}

	sb.cube.metrics.RecordScan(len(rows), time.Since(begin))

	return rows, nil
}

// Collect materializes the full row sequence. With Parallel(n), n workers
// resolve contiguous chunks concurrently; row order is preserved. This is
// sound because the snapshot is read-only.
func (sb *ScanBuilder[T]) Collect(ctx context.Context) ([]Row[T], error) {
	begin := time.Now()

	enum := newEnumerator(sb.cube)

	rows, err := sb.collect(ctx, enum)
	if err != nil {
		return nil, err
	}

	sb.cube.metrics.RecordScan(len(rows), time.Since(begin))
	sb.cube.logger.LogScan(ctx, enum.total, len(rows))

	return rows, nil
}

func (sb *ScanBuilder[T]) collect(ctx context.Context, enum *enumerator[T]) ([]Row[T], error) {
	if sb.parallelism < 2 || enum.total < 2 {
		rows := make([]Row[T], 0, enum.total)
		for i := 0; i < enum.total; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			row := enum.rowAt(i)
			if sb.filter != nil && !sb.filter(row) {
				continue
			}
			rows = append(rows, row)
		}
		return rows, nil
	}

	workers := sb.parallelism
	if workers > enum.total {
		workers = enum.total
	}

	chunks := make([][]Row[T], workers)
	g, ctx := errgroup.WithContext(ctx)

	chunkSize := (enum.total + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > enum.total {
			end = enum.total
		}

		g.Go(func() error {
			part := make([]Row[T], 0, end-start)
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				row := enum.rowAt(i)
				if sb.filter != nil && !sb.filter(row) {
					continue
				}
				part = append(part, row)
			}
			chunks[w] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rows []Row[T]
	for _, part := range chunks {
		rows = append(rows, part...)
	}
	return rows, nil
}

// Contains reports whether the candidate row is one the cube would produce:
// resolution is recomputed at the candidate's coordinates and the resulting
// attribute cells must match exactly.
func (sb *ScanBuilder[T]) Contains(row Row[T]) bool {
	return newEnumerator(sb.cube).contains(row)
}
