package iterator

import (
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"
	"github.com/on-the-ground/tail_ive_go/scalar"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Tail yields the last n elements of its source, last element first.
//
// The source is drained on the first HasNext or Next and never again. A
// drain failure panics with a *scalar.Fault wrapping the source's error, and
// every later call raises the same fault.
//
// There is no thread-safety guarantee. Concurrent first use may drain the
// source from several goroutines; serialize access, or make the first call
// before sharing the Tail.
type Tail[T any] struct {
	window scalar.Unchecked[Iterator[T]]
}

// NewTail wraps src without pulling from it. After this call src belongs to
// the Tail; pulling from it directly corrupts the window.
// If src implements io.Closer it is closed once drained.
func NewTail[T any](src Source[T], n int, opts ...TailOption) *Tail[T] {
	if src == nil {
		panic("tail source can't be nil")
	}
	if n < 0 {
		panic("tail window size can't be < 0")
	}

	cfg := newTailConfig(opts)
	logger := cfg.logger.With(
		zap.String("tail_id", uuid.New().String()),
		zap.Int("window", n),
	)

	return &Tail[T]{
		window: scalar.NewUnchecked[Iterator[T]](
			scalar.NewSticky[Iterator[T]](scalar.Func[Iterator[T]](func() (Iterator[T], error) {
				buf, err := drain(src)
				if err != nil {
					logger.Debug("tail source drain failed",
						zap.Int("buffered", len(buf)),
						zap.Error(err),
					)
					return nil, err
				}
				kept := buf
				if len(kept) > n {
					kept = slices.Clone(kept[len(kept)-n:])
				}
				logger.Debug("tail window computed",
					zap.Int("buffered", len(buf)),
					zap.Int("kept", len(kept)),
				)
				return NewHead[T](NewReversed(kept), n), nil
			})),
		),
	}
}

func (t *Tail[T]) HasNext() bool {
	return t.window.Value().HasNext()
}

func (t *Tail[T]) Next() T {
	return t.window.Value().Next()
}

func drain[T any](src Source[T]) (buf []T, err error) {
	if closer, ok := src.(io.Closer); ok {
		defer func() {
			if cerr := closer.Close(); cerr != nil {
				err = multierr.Append(err, fmt.Errorf("close tail source: %w", cerr))
			}
		}()
	}
	for src.HasNext() {
		v, perr := src.Next()
		if perr != nil {
			return buf, fmt.Errorf("drain tail source at element %d: %w", len(buf), perr)
		}
		buf = append(buf, v)
	}
	return buf, nil
}
