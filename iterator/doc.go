// Package iterator implements pull-based, single-pass sequences and the
// lazy tail window over them.
//
// Two protocols live here:
//   - Iterator is what callers consume. Next panics with ErrExhausted when
//     called past the end; check HasNext first.
//   - Source is what callers supply. Its Next may fail with an ordinary error,
//     which is how I/O-backed producers report trouble.
//
// Tail is the centerpiece. It wraps a Source and yields the last n elements,
// closest-to-the-end first:
//
//	tail := iterator.NewTail(iterator.FromSlice([]int{1, 2, 3, 4, 5}), 2)
//	for v := range iterator.All[int](tail) {
//	    fmt.Println(v) // 5, then 4
//	}
//
// Nothing is pulled from the source until the first HasNext or Next. At that
// point the whole source is drained, because the last n elements of a
// forward-only sequence of unknown length can't be known any other way. The
// window is built once and reused; the source is never touched again.
//
// A failure while draining surfaces as a panic carrying a *scalar.Fault
// whose cause chain holds the source's error.
//
// Iterators in this package are not safe for concurrent use.
package iterator
