package iterator

// Head is a bounded-prefix decorator: it yields at most limit elements of its
// origin and never pulls more than that from it.
type Head[T any] struct {
	origin Iterator[T]
	limit  int
	taken  int
}

func NewHead[T any](origin Iterator[T], limit int) *Head[T] {
	if origin == nil {
		panic("head origin can't be nil")
	}
	if limit < 0 {
		panic("head limit can't be < 0")
	}
	return &Head[T]{origin: origin, limit: limit}
}

func (h *Head[T]) HasNext() bool {
	return h.taken < h.limit && h.origin.HasNext()
}

func (h *Head[T]) Next() T {
	if !h.HasNext() {
		panic(ErrExhausted)
	}
	h.taken++
	return h.origin.Next()
}
