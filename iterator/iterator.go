package iterator

import (
	"errors"
	"iter"
)

// ErrExhausted is raised when Next is called on a sequence with nothing left.
var ErrExhausted = errors.New("iterator: no more elements")

// Iterator is a single-pass, forward-only pull sequence.
// Next panics with ErrExhausted when HasNext would report false.
type Iterator[T any] interface {
	HasNext() bool
	Next() T
}

// Source is a single-pass producer whose pulls may fail.
// Next returns ErrExhausted when HasNext would report false.
type Source[T any] interface {
	HasNext() bool
	Next() (T, error)
}

type sliceIterator[T any] struct {
	items []T
	pos   int
}

// Of returns an Iterator over items in order.
func Of[T any](items ...T) Iterator[T] {
	return &sliceIterator[T]{items: items}
}

func (s *sliceIterator[T]) HasNext() bool {
	return s.pos < len(s.items)
}

func (s *sliceIterator[T]) Next() T {
	if !s.HasNext() {
		panic(ErrExhausted)
	}
	v := s.items[s.pos]
	s.pos++
	return v
}

// All adapts it to a range-over-func sequence. Ranging consumes it.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	//nolint:prealloc // length unknown
	var out []T
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}
