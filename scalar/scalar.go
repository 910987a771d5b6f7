package scalar

// Scalar is a deferred computation that yields a value of type R or fails.
type Scalar[R any] interface {
	Value() (R, error)
}

// Func adapts a plain function to Scalar.
type Func[R any] func() (R, error)

func (f Func[R]) Value() (R, error) {
	return f()
}

type constant[R any] struct {
	value R
}

// Constant returns a scalar that always yields value.
func Constant[R any](value R) Scalar[R] {
	return constant[R]{value: value}
}

func (c constant[R]) Value() (R, error) {
	return c.value, nil
}
