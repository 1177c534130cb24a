package cubego

// Cursor is an explicit, resumable traversal continuation over a cube
// snapshot. It moves through states Active(0) .. Active(total), producing
// one row per Next call, until Done; Halt moves any active state to the
// terminal Halted state without producing further rows.
//
// A Cursor can be handed around and resumed at any point; already-produced
// rows are never recomputed. It is not safe for concurrent use.
type Cursor[T comparable] struct {
	enum   *enumerator[T]
	index  int
	halted bool
}

// Next produces the row at the current index and advances the cursor. It
// returns false once the traversal is done or halted.
func (c *Cursor[T]) Next() (Row[T], bool) {
	if c.halted || c.index >= c.enum.total {
		return Row[T]{}, false
	}
	row := c.enum.rowAt(c.index)
	c.index++
	return row, true
}

// Halt terminates the traversal; subsequent Next calls produce nothing.
func (c *Cursor[T]) Halt() {
	c.halted = true
}

// Halted reports whether the cursor was halted by the consumer.
func (c *Cursor[T]) Halted() bool {
	return c.halted
}

// Done reports whether the traversal is finished, either by exhaustion or by
// Halt.
func (c *Cursor[T]) Done() bool {
	return c.halted || c.index >= c.enum.total
}

// Index returns the index of the next row to be produced.
func (c *Cursor[T]) Index() int {
	return c.index
}

// Total returns the number of rows in the underlying snapshot.
func (c *Cursor[T]) Total() int {
	return c.enum.total
}

// Seek positions the cursor so the next produced row has the given index.
// Seeking to total is allowed and leaves the cursor done.
func (c *Cursor[T]) Seek(index int) error {
	if index < 0 || index > c.enum.total {
		return &ErrOutOfRange{Start: index, Total: c.enum.total}
	}
	c.index = index
	return nil
}
