// Package runner executes a scan: it walks the generated point list, applies
// parameter values, invokes the measurement once per point and routes axis
// values and results to their sinks in lockstep. Execution runs either
// entirely on the host or through a remote execution target in chunks.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/mhollis/gridscan/internal/executor"
	"github.com/mhollis/gridscan/internal/scan"
	"github.com/mhollis/gridscan/internal/sink"
)

// #region types

// State describes where a run is in its lifecycle. Transitions only move
// forward except Paused, which returns to Running on the next Run call.
type State int

const (
	Idle State = iota
	Running
	Paused
	Cancelled
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Cancelled:
		return "cancelled"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ErrInterrupted is returned when a run stops because its context was
// cancelled rather than because the point list ran out.
var ErrInterrupted = errors.New("scan interrupted")

// Scheduler is the host scheduler surface the runner yields to. CheckPause
// reports whether the run should suspend at the next safe boundary.
type Scheduler interface {
	CheckPause() bool
}

// NeverPause is a Scheduler that lets a run proceed to completion.
type NeverPause struct{}

func (NeverPause) CheckPause() bool { return false }

// Fragment is the host-side measurement. HostSetup runs once at every entry
// into Run, including after a resume. RunOnce performs a single measurement
// at the currently applied parameter values and pushes its results into the
// result channels.
type Fragment interface {
	HostSetup(ctx context.Context) error
	RunOnce(ctx context.Context) error
}

// FragmentFunc adapts a bare measurement function to Fragment with no host
// setup step.
type FragmentFunc func(ctx context.Context) error

func (f FragmentFunc) HostSetup(ctx context.Context) error { return nil }
func (f FragmentFunc) RunOnce(ctx context.Context) error   { return f(ctx) }

// RunLog receives run lifecycle events. Implementations must tolerate
// being called from the runner goroutine only; nil disables logging.
type RunLog interface {
	Event(event, detail string)
}

// PointLog observes each completed point after its axis values and results
// have been pushed to their sinks. nil disables observation.
type PointLog interface {
	PointDone(index int)
}

// Params collects everything a Runner needs. Target selects remote chunked
// execution when non-nil; Fragment may then be nil.
type Params struct {
	Spec      *scan.Spec
	Fragment  Fragment
	Target    executor.Target
	Scheduler Scheduler
	AxisSinks []sink.Sink
	Channels  []*sink.ResultChannel
	PhaseSink sink.Sink
	Log       RunLog
	Points    PointLog
	Config    Config
}

// Config tunes execution mechanics; zero values select the defaults.
type Config struct {
	ChunkSize          int
	PauseCheckInterval time.Duration
}

const (
	DefaultChunkSize          = 10
	defaultPauseCheckInterval = 200 * time.Millisecond
)

// Runner drives one scan to completion. All methods must be called from a
// single goroutine; suspension and cancellation arrive through the
// Scheduler and the context rather than through concurrent calls.
type Runner struct {
	spec      *scan.Spec
	frag      Fragment
	target    executor.Target
	sched     Scheduler
	axisSinks []sink.Sink
	channels  []*sink.ResultChannel
	phaseSink sink.Sink
	runLog    RunLog
	pointLog  PointLog
	cfg       Config

	state     State
	points    *scan.Points
	buf       *chunk
	delivered int
	missing   map[string]bool
	phase     bool
	lastCheck time.Time
}

// #endregion types

// #region construction

// New validates the wiring and returns a Runner in the Idle state.
func New(p Params) (*Runner, error) {
	if p.Spec == nil {
		return nil, fmt.Errorf("runner: nil spec")
	}
	if err := p.Spec.Validate(); err != nil {
		return nil, err
	}
	if p.Scheduler == nil {
		return nil, fmt.Errorf("runner: nil scheduler")
	}
	if p.Target == nil && p.Fragment == nil {
		return nil, fmt.Errorf("runner: need a fragment or an execution target")
	}
	if len(p.Spec.Axes) == 0 && p.Fragment == nil {
		return nil, fmt.Errorf("runner: a scan without axes runs on the host and needs a fragment")
	}
	if len(p.AxisSinks) != len(p.Spec.Axes) {
		return nil, fmt.Errorf("runner: %d axis sinks for %d axes", len(p.AxisSinks), len(p.Spec.Axes))
	}
	cfg := p.Config
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.PauseCheckInterval <= 0 {
		cfg.PauseCheckInterval = defaultPauseCheckInterval
	}
	return &Runner{
		spec:      p.Spec,
		frag:      p.Fragment,
		target:    p.Target,
		sched:     p.Scheduler,
		axisSinks: p.AxisSinks,
		channels:  p.Channels,
		phaseSink: p.PhaseSink,
		runLog:    p.Log,
		pointLog:  p.Points,
		cfg:       cfg,
		buf:       newChunk(cfg.ChunkSize),
		missing:   make(map[string]bool),
	}, nil
}

// #endregion construction

// #region accessors

// State returns the current lifecycle state.
func (r *Runner) State() State { return r.state }

// Delivered returns the number of points whose values and results have been
// pushed to sinks.
func (r *Runner) Delivered() int { return r.delivered }

// Missing lists result channels that went unfilled for at least one
// completed point, sorted by name.
func (r *Runner) Missing() []string {
	names := make([]string, 0, len(r.missing))
	for n := range r.missing {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Seed returns the seed the point order was generated from. Only valid
// after the first Run call.
func (r *Runner) Seed() int64 {
	if r.spec.Options.Seed == nil {
		return 0
	}
	return *r.spec.Options.Seed
}

// #endregion accessors

// #region run

// Run executes the scan until it completes, is cancelled through ctx, or
// the scheduler requests a pause. A paused run is resumed by calling Run
// again; it continues from the first undelivered point. Run returns nil on
// completion and on pause; callers distinguish the two through State.
func (r *Runner) Run(ctx context.Context) error {
	switch r.state {
	case Idle:
		if err := r.start(ctx); err != nil {
			return err
		}
	case Paused:
		r.event("resume", fmt.Sprintf("%d points delivered", r.delivered))
	case Running:
		return fmt.Errorf("runner: already running")
	default:
		return fmt.Errorf("runner: run already %s", r.state)
	}
	r.state = Running

	if r.frag != nil {
		if err := r.frag.HostSetup(ctx); err != nil {
			r.state = Cancelled
			return fmt.Errorf("host setup: %w", err)
		}
	}

	var err error
	switch {
	case len(r.spec.Axes) == 0:
		err = r.runContinuous(ctx)
	case r.target != nil:
		err = r.runTarget(ctx)
	default:
		err = r.runHost(ctx)
	}
	if err != nil {
		if r.state == Running {
			r.state = Cancelled
		}
		return err
	}
	switch r.state {
	case Paused:
		r.event("pause", fmt.Sprintf("%d points delivered", r.delivered))
	case Completed:
		r.event("complete", fmt.Sprintf("%d points delivered", r.delivered))
	}
	return nil
}

// start resolves the point order and checks the target can handle the
// scan's dimensionality before any side effects happen.
func (r *Runner) start(ctx context.Context) error {
	if r.target != nil && len(r.spec.Axes) > 0 {
		max, err := r.target.MaxAxes(ctx)
		if err != nil {
			return fmt.Errorf("query target capabilities: %w", err)
		}
		if max > 0 && len(r.spec.Axes) > max {
			return &scan.ConfigError{Reason: fmt.Sprintf(
				"scan has %d axes but target supports at most %d", len(r.spec.Axes), max)}
		}
	}
	pts, err := scan.GeneratePoints(r.spec)
	if err != nil {
		return err
	}
	r.points = pts
	r.event("start", fmt.Sprintf("%d axes, seed %d", len(r.spec.Axes), r.Seed()))
	return nil
}

// #endregion run

// #region host path

// runHost is the per-point synchronous loop: apply values, measure, deliver.
func (r *Runner) runHost(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			r.discardPending()
			r.state = Cancelled
			return ErrInterrupted
		}
		pt, ok := r.points.Next()
		if !ok {
			r.state = Completed
			return nil
		}
		coerced := r.applyPoint(pt)
		if err := r.frag.RunOnce(ctx); err != nil {
			r.discardPending()
			if ctx.Err() != nil {
				r.state = Cancelled
				return ErrInterrupted
			}
			return fmt.Errorf("run point: %w", err)
		}
		r.deliverPoint(coerced)
		if r.sched.CheckPause() {
			r.state = Paused
			return nil
		}
	}
}

// runContinuous repeats the measurement without any axes. The phase sink
// toggles after every point so consumers can tell successive points apart.
func (r *Runner) runContinuous(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			r.state = Cancelled
			return ErrInterrupted
		}
		if r.sched.CheckPause() {
			r.state = Paused
			return nil
		}
		if !r.spec.Options.ContinuousWithoutAxes {
			// A plain zero-axis scan still runs NumRepeats points and ends.
			if _, ok := r.points.Next(); !ok {
				r.state = Completed
				return nil
			}
		}
		if err := r.frag.RunOnce(ctx); err != nil {
			r.discardPending()
			if ctx.Err() != nil {
				r.state = Cancelled
				return ErrInterrupted
			}
			return fmt.Errorf("run point: %w", err)
		}
		r.deliverPoint(nil)
		r.phase = !r.phase
		if r.phaseSink != nil {
			v := 0.0
			if r.phase {
				v = 1.0
			}
			r.phaseSink.Push(v)
		}
	}
}

// #endregion host path

// #region delivery

// applyPoint coerces each value through its axis store and writes it into
// the store. Returns the coerced values; those, not the raw generator
// output, are what sinks later receive.
func (r *Runner) applyPoint(pt []float64) []float64 {
	coerced := make([]float64, len(pt))
	for i, ax := range r.spec.Axes {
		coerced[i] = ax.Store.Coerce(pt[i])
		ax.Store.SetValue(coerced[i])
	}
	return coerced
}

// deliverPoint pushes a completed point's axis values and then flushes
// every result channel. Axis values never appear without the matching
// results and vice versa; this is the only place either is pushed.
func (r *Runner) deliverPoint(coerced []float64) {
	for i, v := range coerced {
		r.axisSinks[i].Push(v)
	}
	for _, ch := range r.channels {
		if !ch.Flush() {
			if !r.missing[ch.Name()] {
				log.Printf("[RUN] channel %q produced no result for point %d", ch.Name(), r.delivered)
				r.event("missing-result", ch.Name())
			}
			r.missing[ch.Name()] = true
		}
	}
	if r.pointLog != nil {
		r.pointLog.PointDone(r.delivered)
	}
	r.delivered++
}

// discardPending drops buffered channel values for a point that will not be
// delivered, so they cannot leak into the next point.
func (r *Runner) discardPending() {
	for _, ch := range r.channels {
		ch.Discard()
	}
}

func (r *Runner) event(event, detail string) {
	if r.runLog != nil {
		r.runLog.Event(event, detail)
	}
}

// #endregion delivery
