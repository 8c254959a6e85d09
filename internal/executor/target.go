package executor

import "context"

// #region types

// PointResults maps result channel names to the values measured at one
// scan point.
type PointResults map[string]float64

// PointFunc performs the measurement for a single point, given the coerced
// axis values in axis-declaration order.
type PointFunc func(ctx context.Context, point []float64) (PointResults, error)

// Target executes scan points on an execution context that is expensive to
// talk to, so points are handed over in chunks and completion is
// acknowledged one point at a time, strictly head-first.
type Target interface {
	// MaxAxes reports the highest axis count the target supports.
	// 0 means unbounded.
	MaxAxes(ctx context.Context) (int, error)

	// RunChunk executes one chunk. axes holds one value slice per scan
	// axis; all slices have equal length (the number of points). done is
	// invoked once per completed point, in point order, with that point's
	// result channel values. RunChunk returns only after every point in
	// the chunk has been acknowledged, or with the error that stopped it.
	RunChunk(ctx context.Context, axes [][]float64, done func(results PointResults)) error
}

// #endregion types

// #region loopback

// Loopback is an in-process Target that runs the point function directly.
// It gives chunked execution the same observable behaviour as the remote
// path, which makes it the reference implementation for tests and the
// fallback when no executor service is configured.
type Loopback struct {
	fn      PointFunc
	maxAxes int
}

// NewLoopback creates a Loopback around fn. maxAxes of 0 means unbounded.
func NewLoopback(fn PointFunc, maxAxes int) *Loopback {
	return &Loopback{fn: fn, maxAxes: maxAxes}
}

func (l *Loopback) MaxAxes(ctx context.Context) (int, error) {
	return l.maxAxes, nil
}

func (l *Loopback) RunChunk(ctx context.Context, axes [][]float64, done func(results PointResults)) error {
	if len(axes) == 0 {
		return nil
	}
	numPoints := len(axes[0])
	for i := 0; i < numPoints; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		point := make([]float64, len(axes))
		for a := range axes {
			point[a] = axes[a][i]
		}
		results, err := l.fn(ctx, point)
		if err != nil {
			return err
		}
		done(results)
	}
	return nil
}

// #endregion loopback
