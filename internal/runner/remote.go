package runner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mhollis/gridscan/internal/executor"
	"github.com/mhollis/gridscan/internal/scan"
)

// #region constants

const maxChunkRetries = 2 // max 2 retries = 3 total attempts per chunk
const chunkRetryBackoff = 50 * time.Millisecond

// #endregion constants

// #region remote path

// runTarget executes the scan through an execution target in chunks. The
// chunk buffer holds every point handed over but not yet acknowledged;
// completion acks arrive strictly in order and pop the head, so after any
// interruption the buffer is exactly the undelivered remainder and the next
// round trip resumes from it.
func (r *Runner) runTarget(ctx context.Context) error {
	r.primeHostShadow()
	retries := 0
	for {
		axes, err := r.chunkAxes()
		if errors.Is(err, scan.ErrExhausted) {
			r.state = Completed
			return nil
		}
		if err != nil {
			return err
		}
		before := r.delivered
		err = r.target.RunChunk(ctx, axes, r.pointCompleted)
		if err != nil {
			r.discardPending()
			if ctx.Err() != nil {
				r.state = Cancelled
				return ErrInterrupted
			}
			// Acknowledged points were popped from the buffer, so a retry
			// resends only the undelivered remainder. Progress within the
			// failed attempt resets the budget.
			if r.delivered > before {
				retries = 0
			}
			if retries < maxChunkRetries {
				retries++
				log.Printf("[RUN] chunk failed (retry %d/%d): %v", retries, maxChunkRetries, err)
				r.event("chunk-retry", err.Error())
				select {
				case <-time.After(chunkRetryBackoff):
				case <-ctx.Done():
					r.state = Cancelled
					return ErrInterrupted
				}
				continue
			}
			return fmt.Errorf("run chunk: %w", err)
		}
		retries = 0
		// Pause checks are throttled: a chunk is already a coarse unit and
		// polling the scheduler every boundary would dominate short chunks.
		if time.Since(r.lastCheck) >= r.cfg.PauseCheckInterval {
			r.lastCheck = time.Now()
			if r.sched.CheckPause() {
				r.state = Paused
				return nil
			}
		}
	}
}

// chunkAxes tops the buffer up from the point iterator and returns its
// contents as per-axis value slices. Returns ErrExhausted when no points
// remain anywhere.
func (r *Runner) chunkAxes() ([][]float64, error) {
	r.fillChunk()
	if r.buf.len() == 0 {
		return nil, scan.ErrExhausted
	}
	return r.buf.snapshot(len(r.spec.Axes)), nil
}

// fillChunk pulls points from the iterator until the buffer is full or the
// scan is exhausted. Values are coerced here, once, so the buffer, the
// target and the sinks all see the same numbers.
func (r *Runner) fillChunk() {
	for !r.buf.full() {
		pt, ok := r.points.Next()
		if !ok {
			return
		}
		coerced := make([]float64, len(pt))
		for i, ax := range r.spec.Axes {
			coerced[i] = ax.Store.Coerce(pt[i])
		}
		r.buf.pushBack(coerced)
	}
}

// pointCompleted handles one in-order completion ack from the target: the
// head of the chunk buffer is the point it refers to. Axis values and
// results are delivered together, then the host-side stores move on to the
// next undelivered point.
func (r *Runner) pointCompleted(results executor.PointResults) {
	pt := r.buf.popFront()
	for _, ch := range r.channels {
		if v, ok := results[ch.Name()]; ok {
			ch.Push(v)
		}
	}
	r.deliverPoint(pt)
	r.primeHostShadow()
}

// primeHostShadow sets the host-side parameter stores to the next
// undelivered point, refilling the buffer eagerly if it has drained. Host
// reads of scanned parameters then always agree with what the target is
// about to run.
func (r *Runner) primeHostShadow() {
	if r.buf.len() == 0 {
		r.fillChunk()
	}
	head, ok := r.buf.head()
	if !ok {
		return
	}
	for i, ax := range r.spec.Axes {
		ax.Store.SetValue(head[i])
	}
}

// #endregion remote path
