package scalar

import "fmt"

type stickyState uint8

const (
	statePending stickyState = iota
	stateComputed
	stateFailed
)

// Sticky is a Scalar that evaluates its origin once and caches the outcome.
//
// Both a value and an error are recorded, and so is a panic: it is stored as
// an error for later calls and re-raised to the current one. A failed origin
// is never re-run: origins are often built over single-pass inputs that
// cannot be replayed, and a second attempt would observe whatever the first
// one left behind.
//
// There is no thread-safety guarantee. Two goroutines calling Value before the
// first call returns may both run the origin.
type Sticky[R any] struct {
	origin Scalar[R]

	state stickyState
	value R
	err   error
}

func NewSticky[R any](origin Scalar[R]) *Sticky[R] {
	if origin == nil {
		panic("sticky origin can't be nil")
	}
	return &Sticky[R]{origin: origin}
}

func (s *Sticky[R]) Value() (R, error) {
	switch s.state {
	case stateComputed:
		return s.value, nil
	case stateFailed:
		var zero R
		return zero, s.err
	}

	defer func() {
		if r := recover(); r != nil {
			s.err = panicError(r)
			s.state = stateFailed
			panic(r)
		}
	}()

	value, err := s.origin.Value()
	if err != nil {
		s.err = err
		s.state = stateFailed
		var zero R
		return zero, err
	}
	s.value = value
	s.state = stateComputed
	// release the closure and whatever it captured
	s.origin = nil
	return value, nil
}

// Computed reports whether the origin has run, successfully or not.
func (s *Sticky[R]) Computed() bool {
	return s.state != statePending
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("sticky origin panicked: %w", err)
	}
	return fmt.Errorf("sticky origin panicked: %v", r)
}
