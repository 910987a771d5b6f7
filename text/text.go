// Package text provides deferred string values.
package text

import (
	"strings"

	"github.com/on-the-ground/tail_ive_go/iterator"
	"github.com/on-the-ground/tail_ive_go/scalar"
)

// Text is a string that is produced on demand and may fail to be.
type Text interface {
	AsString() (string, error)
}

// Plain is a Text that is already known.
type Plain string

func (p Plain) AsString() (string, error) {
	return string(p), nil
}

// Func adapts a function to Text.
type Func func() (string, error)

func (f Func) AsString() (string, error) {
	return f()
}

type joined struct {
	sep   string
	parts iterator.Iterator[string]
}

// Join returns a Text of the elements of parts separated by sep.
// parts is consumed the first time the Text is read.
func Join(sep string, parts iterator.Iterator[string]) Text {
	return joined{sep: sep, parts: parts}
}

func (j joined) AsString() (string, error) {
	// faults raised by parts, a draining Tail for one, come back as errors
	return scalar.Recover(func() string {
		return strings.Join(iterator.Collect(j.parts), j.sep)
	})
}

// UncheckedText reads a Text and raises its failure as a *scalar.Fault panic.
type UncheckedText struct {
	origin scalar.Unchecked[string]
}

func Unchecked(t Text) UncheckedText {
	if t == nil {
		panic("text can't be nil")
	}
	return UncheckedText{origin: scalar.NewUnchecked[string](scalar.Func[string](t.AsString))}
}

func (u UncheckedText) AsString() string {
	return u.origin.Value()
}
