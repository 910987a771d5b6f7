// Package scalar provides deferred, nullary computations and decorators over them.
//
// A Scalar is a value that is not computed until asked for. It may fail, and
// the failure is an ordinary error return:
//
//	type Scalar[R any] interface {
//	    Value() (R, error)
//	}
//
// Two decorators give scalars their useful shape:
//   - Sticky remembers the outcome of the first Value call, success or failure,
//     and replays it forever after. The wrapped computation runs at most once.
//   - Unchecked turns the error return into a panic carrying a *Fault, for
//     callers whose contract has no room for an error (an iterator's Next, for
//     instance). The wrapped error stays reachable through errors.Unwrap.
//
// They compose in that order:
//
//	once := scalar.NewUnchecked[int](scalar.NewSticky[int](scalar.Func[int](load)))
//	v := once.Value() // runs load; panics with *scalar.Fault if load fails
//	v = once.Value()  // cached
//
// None of the types in this package are safe for concurrent first use.
package scalar
