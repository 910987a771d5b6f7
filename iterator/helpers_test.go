package iterator_test

import (
	"errors"

	"github.com/on-the-ground/tail_ive_go/iterator"
)

// countingSource yields items and counts every Next call.
type countingSource[T any] struct {
	items  []T
	pos    int
	pulls  int
	failAt int // 1-based pull that fails; 0 never fails
	err    error
}

func newCountingSource[T any](items ...T) *countingSource[T] {
	return &countingSource[T]{items: items}
}

func (c *countingSource[T]) HasNext() bool {
	return c.pos < len(c.items)
}

func (c *countingSource[T]) Next() (T, error) {
	var zero T
	c.pulls++
	if c.failAt > 0 && c.pulls == c.failAt {
		return zero, c.err
	}
	if !c.HasNext() {
		return zero, iterator.ErrExhausted
	}
	v := c.items[c.pos]
	c.pos++
	return v, nil
}

// closingSource is a countingSource that records Close calls.
type closingSource[T any] struct {
	*countingSource[T]
	closed   int
	closeErr error
}

func (c *closingSource[T]) Close() error {
	c.closed++
	return c.closeErr
}

var errSource = errors.New("source failed")

func intsUpTo(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
