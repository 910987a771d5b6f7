package iterator

// Reversed walks a slice from its last element to its first.
// The slice is shared, not copied; it must not change while iterating.
type Reversed[T any] struct {
	items []T
	pos   int
}

func NewReversed[T any](items []T) *Reversed[T] {
	return &Reversed[T]{items: items, pos: len(items) - 1}
}

func (r *Reversed[T]) HasNext() bool {
	return r.pos >= 0
}

func (r *Reversed[T]) Next() T {
	if !r.HasNext() {
		panic(ErrExhausted)
	}
	v := r.items[r.pos]
	r.pos--
	return v
}
