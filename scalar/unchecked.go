package scalar

import "fmt"

// Fault is the panic value raised by Unchecked when its origin fails.
type Fault struct {
	Cause error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("unchecked scalar: %v", f.Cause)
}

func (f *Fault) Unwrap() error {
	return f.Cause
}

// Unchecked exposes a Scalar whose failures are raised as *Fault panics.
type Unchecked[R any] struct {
	origin Scalar[R]
}

func NewUnchecked[R any](origin Scalar[R]) Unchecked[R] {
	if origin == nil {
		panic("unchecked origin can't be nil")
	}
	return Unchecked[R]{origin: origin}
}

// Value returns the origin's value, or panics with a *Fault wrapping its error.
// An error that is itself a *Fault is raised as it is. An error that merely
// wraps one is wrapped again, keeping its own context in the chain.
func (u Unchecked[R]) Value() R {
	value, err := u.origin.Value()
	if err != nil {
		if fault, ok := err.(*Fault); ok {
			panic(fault)
		}
		panic(&Fault{Cause: err})
	}
	return value
}

// Recover converts a *Fault panic raised by fn back into an error.
// Panics with any other value are propagated.
func Recover[R any](fn func() R) (res R, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		fault, ok := r.(*Fault)
		if !ok {
			panic(r)
		}
		err = fault
	}()
	return fn(), nil
}
