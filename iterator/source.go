package iterator

import "iter"

type checked[T any] struct {
	origin Iterator[T]
}

// FromIterator lifts an Iterator into a Source that never fails.
func FromIterator[T any](it Iterator[T]) Source[T] {
	if it == nil {
		panic("source iterator can't be nil")
	}
	return checked[T]{origin: it}
}

// FromSlice returns a Source over items in order.
func FromSlice[T any](items []T) Source[T] {
	return FromIterator(Of(items...))
}

func (c checked[T]) HasNext() bool {
	return c.origin.HasNext()
}

func (c checked[T]) Next() (T, error) {
	if !c.origin.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	return c.origin.Next(), nil
}

// chanSource peeks one element ahead so that HasNext can answer without
// losing what it received.
type chanSource[T any] struct {
	ch      <-chan T
	pending T
	peeked  bool
	closed  bool
}

// FromChan returns a Source that receives from ch until it is closed.
// HasNext blocks until a value arrives or ch is closed.
func FromChan[T any](ch <-chan T) Source[T] {
	if ch == nil {
		panic("source channel can't be nil")
	}
	return &chanSource[T]{ch: ch}
}

func (c *chanSource[T]) HasNext() bool {
	if c.peeked {
		return true
	}
	if c.closed {
		return false
	}
	v, ok := <-c.ch
	if !ok {
		c.closed = true
		return false
	}
	c.pending, c.peeked = v, true
	return true
}

func (c *chanSource[T]) Next() (T, error) {
	var zero T
	if !c.HasNext() {
		return zero, ErrExhausted
	}
	v := c.pending
	c.pending, c.peeked = zero, false
	return v, nil
}

// SeqSource pulls from a push-style iterator. The pull goroutine of
// iter.Pull2 starts on the first HasNext or Next and is held until the
// sequence is exhausted or closed; call Close when abandoning it early.
type SeqSource[T any] struct {
	seq  iter.Seq2[T, error]
	next func() (T, error, bool)
	stop func()

	pending T
	err     error
	peeked  bool
	done    bool
}

// FromSeq returns a Source over seq. It never fails.
func FromSeq[T any](seq iter.Seq[T]) *SeqSource[T] {
	if seq == nil {
		panic("source seq can't be nil")
	}
	return FromSeq2(func(yield func(T, error) bool) {
		for v := range seq {
			if !yield(v, nil) {
				return
			}
		}
	})
}

// FromSeq2 returns a Source over seq. A non-nil error yielded by seq is
// returned by the Next call that reaches it.
func FromSeq2[T any](seq iter.Seq2[T, error]) *SeqSource[T] {
	if seq == nil {
		panic("source seq can't be nil")
	}
	return &SeqSource[T]{seq: seq}
}

func (s *SeqSource[T]) pull() {
	if s.next == nil {
		s.next, s.stop = iter.Pull2(s.seq)
		s.seq = nil
	}
}

func (s *SeqSource[T]) HasNext() bool {
	if s.peeked {
		return true
	}
	if s.done {
		return false
	}
	s.pull()
	v, err, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		return false
	}
	s.pending, s.err, s.peeked = v, err, true
	return true
}

func (s *SeqSource[T]) Next() (T, error) {
	var zero T
	if !s.HasNext() {
		return zero, ErrExhausted
	}
	v, err := s.pending, s.err
	s.pending, s.err, s.peeked = zero, nil, false
	if err != nil {
		return zero, err
	}
	return v, nil
}

// Close stops the underlying pull, if one was started. It is safe to call
// more than once.
func (s *SeqSource[T]) Close() error {
	s.done = true
	s.peeked = false
	if s.stop != nil {
		s.stop()
	}
	return nil
}
