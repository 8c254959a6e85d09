package runner

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mhollis/gridscan/internal/executor"
	"github.com/mhollis/gridscan/internal/param"
	"github.com/mhollis/gridscan/internal/scan"
	"github.com/mhollis/gridscan/internal/sink"
)

// #region helpers

func linearAxis(t *testing.T, fqn string, start, stop float64, n int) scan.Axis {
	t.Helper()
	gen, err := scan.NewLinear(start, stop, n, false)
	if err != nil {
		t.Fatalf("NewLinear(%v, %v, %d): %v", start, stop, n, err)
	}
	return scan.Axis{
		Schema:    param.Schema{FQN: fqn, Type: "float"},
		Path:      "frag",
		Store:     param.NewFloatStore(start),
		Generator: gen,
	}
}

func listAxis(t *testing.T, fqn string, values []float64) scan.Axis {
	t.Helper()
	gen, err := scan.NewList(values, false)
	if err != nil {
		t.Fatalf("NewList(%v): %v", values, err)
	}
	return scan.Axis{
		Schema:    param.Schema{FQN: fqn, Type: "float"},
		Path:      "frag",
		Store:     param.NewFloatStore(values[0]),
		Generator: gen,
	}
}

// pauseAfter asks for a pause on the nth CheckPause call and never again,
// so a resumed run proceeds to completion.
type pauseAfter struct {
	n     int
	calls int
}

func (p *pauseAfter) CheckPause() bool {
	p.calls++
	return p.calls == p.n
}

// harness wires a runner whose fragment computes 10*x + y from the axis
// stores and records every delivery.
type harness struct {
	spec     *scan.Spec
	xSink    *sink.MemorySink
	ySink    *sink.MemorySink
	out      *sink.ResultChannel
	outSink  *sink.MemorySink
	fragment Fragment
}

func newHarness(t *testing.T, spec *scan.Spec) *harness {
	t.Helper()
	h := &harness{
		spec:    spec,
		xSink:   sink.NewMemorySink(),
		ySink:   sink.NewMemorySink(),
		out:     sink.NewResultChannel("readout", "combined readout"),
		outSink: sink.NewMemorySink(),
	}
	h.out.SetSink(h.outSink)
	h.fragment = FragmentFunc(func(ctx context.Context) error {
		x := spec.Axes[0].Store.Get()
		y := spec.Axes[1].Store.Get()
		h.out.Push(10*x + y)
		return nil
	})
	return h
}

func (h *harness) params(sched Scheduler) Params {
	return Params{
		Spec:      h.spec,
		Fragment:  h.fragment,
		Scheduler: sched,
		AxisSinks: []sink.Sink{h.xSink, h.ySink},
		Channels:  []*sink.ResultChannel{h.out},
	}
}

// loopbackTarget runs the same 10*x + y measurement through the chunked
// remote path.
func loopbackTarget(maxAxes int) executor.Target {
	return executor.NewLoopback(func(ctx context.Context, point []float64) (executor.PointResults, error) {
		return executor.PointResults{"readout": 10*point[0] + point[1]}, nil
	}, maxAxes)
}

func twoAxisSpec(t *testing.T) *scan.Spec {
	t.Helper()
	return &scan.Spec{
		Axes: []scan.Axis{
			linearAxis(t, "frag.x", 0, 3, 4),
			listAxis(t, "frag.y", []float64{1, 2}),
		},
		Options: scan.Options{NumRepeats: 1},
	}
}

func mustRun(t *testing.T, r *Runner) {
	t.Helper()
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

// #endregion helpers

// #region host path

func TestHostScanDeliversCrossProductInOrder(t *testing.T) {
	h := newHarness(t, twoAxisSpec(t))
	r, err := New(h.params(NeverPause{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustRun(t, r)

	if got := r.State(); got != Completed {
		t.Fatalf("state = %v, want %v", got, Completed)
	}
	wantX := []float64{0, 0, 1, 1, 2, 2, 3, 3}
	wantY := []float64{1, 2, 1, 2, 1, 2, 1, 2}
	wantOut := []float64{1, 2, 11, 12, 21, 22, 31, 32}
	if diff := cmp.Diff(wantX, h.xSink.Values()); diff != "" {
		t.Errorf("x axis values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantY, h.ySink.Values()); diff != "" {
		t.Errorf("y axis values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantOut, h.outSink.Values()); diff != "" {
		t.Errorf("readout values mismatch (-want +got):\n%s", diff)
	}
	if r.Delivered() != 8 {
		t.Errorf("Delivered() = %d, want 8", r.Delivered())
	}
}

func TestHostScanRepeatsAreBlockMajor(t *testing.T) {
	spec := &scan.Spec{
		Axes:    []scan.Axis{listAxis(t, "frag.y", []float64{5, 6})},
		Options: scan.Options{NumRepeats: 3},
	}
	ySink := sink.NewMemorySink()
	r, err := New(Params{
		Spec:      spec,
		Fragment:  FragmentFunc(func(ctx context.Context) error { return nil }),
		Scheduler: NeverPause{},
		AxisSinks: []sink.Sink{ySink},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustRun(t, r)

	want := []float64{5, 6, 5, 6, 5, 6}
	if diff := cmp.Diff(want, ySink.Values()); diff != "" {
		t.Errorf("axis values mismatch (-want +got):\n%s", diff)
	}
}

func TestHostScanPauseAndResume(t *testing.T) {
	h := newHarness(t, twoAxisSpec(t))
	sched := &pauseAfter{n: 3}
	r, err := New(h.params(sched))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustRun(t, r)
	if got := r.State(); got != Paused {
		t.Fatalf("state after pause = %v, want %v", got, Paused)
	}
	if r.Delivered() != 3 {
		t.Fatalf("Delivered() at pause = %d, want 3", r.Delivered())
	}

	mustRun(t, r)
	if got := r.State(); got != Completed {
		t.Fatalf("state after resume = %v, want %v", got, Completed)
	}
	wantOut := []float64{1, 2, 11, 12, 21, 22, 31, 32}
	if diff := cmp.Diff(wantOut, h.outSink.Values()); diff != "" {
		t.Errorf("readout after resume mismatch (-want +got):\n%s", diff)
	}
}

func TestHostScanCancellationDeliversStrictPrefix(t *testing.T) {
	spec := twoAxisSpec(t)
	ctx, cancel := context.WithCancel(context.Background())
	h := newHarness(t, spec)
	inner := h.fragment
	calls := 0
	h.fragment = FragmentFunc(func(ctx context.Context) error {
		calls++
		if calls == 4 {
			cancel()
		}
		return inner.RunOnce(ctx)
	})
	r, err := New(h.params(NeverPause{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = r.Run(ctx)
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("Run error = %v, want ErrInterrupted", err)
	}
	if got := r.State(); got != Cancelled {
		t.Fatalf("state = %v, want %v", got, Cancelled)
	}
	// The in-flight point finishes and is delivered; nothing after it is.
	wantOut := []float64{1, 2, 11, 12}
	if diff := cmp.Diff(wantOut, h.outSink.Values()); diff != "" {
		t.Errorf("readout prefix mismatch (-want +got):\n%s", diff)
	}
	if len(h.xSink.Values()) != len(h.outSink.Values()) {
		t.Errorf("axis and result counts diverged: %d vs %d",
			len(h.xSink.Values()), len(h.outSink.Values()))
	}
}

func TestHostScanMissingResultIsTracked(t *testing.T) {
	spec := twoAxisSpec(t)
	h := newHarness(t, spec)
	calls := 0
	h.fragment = FragmentFunc(func(ctx context.Context) error {
		calls++
		if calls == 5 {
			return nil // point completes without pushing a result
		}
		x := spec.Axes[0].Store.Get()
		y := spec.Axes[1].Store.Get()
		h.out.Push(10*x + y)
		return nil
	})
	r, err := New(h.params(NeverPause{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustRun(t, r)

	if diff := cmp.Diff([]string{"readout"}, r.Missing()); diff != "" {
		t.Errorf("Missing() mismatch (-want +got):\n%s", diff)
	}
	if got := h.outSink.Len(); got != 7 {
		t.Errorf("readout count = %d, want 7", got)
	}
	// Axis values still arrive for the incomplete point.
	if got := h.xSink.Len(); got != 8 {
		t.Errorf("axis count = %d, want 8", got)
	}
}

func TestFragmentErrorAbortsWithoutDelivery(t *testing.T) {
	spec := twoAxisSpec(t)
	h := newHarness(t, spec)
	boom := errors.New("laser unlocked")
	calls := 0
	inner := h.fragment
	h.fragment = FragmentFunc(func(ctx context.Context) error {
		calls++
		if calls == 3 {
			return boom
		}
		return inner.RunOnce(ctx)
	})
	r, err := New(h.params(NeverPause{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = r.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run error = %v, want wrapped %v", err, boom)
	}
	if got := r.Delivered(); got != 2 {
		t.Errorf("Delivered() = %d, want 2", got)
	}
	if got := h.xSink.Len(); got != 2 {
		t.Errorf("axis values for the failed point leaked: %d pushes", got)
	}
}

// #endregion host path

// #region remote path

func TestChunkedScanMatchesHostScan(t *testing.T) {
	host := newHarness(t, twoAxisSpec(t))
	hr, err := New(host.params(NeverPause{}))
	if err != nil {
		t.Fatalf("New host runner: %v", err)
	}
	mustRun(t, hr)

	remote := newHarness(t, twoAxisSpec(t))
	p := remote.params(NeverPause{})
	p.Fragment = nil
	p.Target = loopbackTarget(0)
	p.Config.ChunkSize = 3 // does not divide the 8 points evenly
	rr, err := New(p)
	if err != nil {
		t.Fatalf("New remote runner: %v", err)
	}
	mustRun(t, rr)

	if diff := cmp.Diff(host.xSink.Values(), remote.xSink.Values()); diff != "" {
		t.Errorf("x axis values diverge (-host +remote):\n%s", diff)
	}
	if diff := cmp.Diff(host.ySink.Values(), remote.ySink.Values()); diff != "" {
		t.Errorf("y axis values diverge (-host +remote):\n%s", diff)
	}
	if diff := cmp.Diff(host.outSink.Values(), remote.outSink.Values()); diff != "" {
		t.Errorf("readout values diverge (-host +remote):\n%s", diff)
	}
}

func TestChunkedScanPrimesHostStores(t *testing.T) {
	spec := twoAxisSpec(t)
	h := newHarness(t, spec)
	var observedX []float64
	target := executor.NewLoopback(func(ctx context.Context, point []float64) (executor.PointResults, error) {
		// What the host-side store reads while a point runs remotely must
		// match the point the target is executing.
		observedX = append(observedX, spec.Axes[0].Store.Get())
		return executor.PointResults{"readout": 10*point[0] + point[1]}, nil
	}, 0)
	p := h.params(NeverPause{})
	p.Fragment = nil
	p.Target = target
	p.Config.ChunkSize = 2
	r, err := New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustRun(t, r)

	want := []float64{0, 0, 1, 1, 2, 2, 3, 3}
	if diff := cmp.Diff(want, observedX); diff != "" {
		t.Errorf("host store shadow mismatch (-want +got):\n%s", diff)
	}
}

func TestChunkedScanPauseResumesFromUndeliveredPoint(t *testing.T) {
	h := newHarness(t, twoAxisSpec(t))
	p := h.params(&pauseAfter{n: 1})
	p.Fragment = nil
	p.Target = loopbackTarget(0)
	p.Config.ChunkSize = 3
	p.Config.PauseCheckInterval = time.Nanosecond // check at every chunk boundary
	r, err := New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustRun(t, r)
	if got := r.State(); got != Paused {
		t.Fatalf("state = %v, want %v", got, Paused)
	}
	if got := r.Delivered(); got != 3 {
		t.Fatalf("Delivered() at pause = %d, want 3", got)
	}

	mustRun(t, r)
	if got := r.State(); got != Completed {
		t.Fatalf("state after resume = %v, want %v", got, Completed)
	}
	wantOut := []float64{1, 2, 11, 12, 21, 22, 31, 32}
	if diff := cmp.Diff(wantOut, h.outSink.Values()); diff != "" {
		t.Errorf("readout after resume mismatch (-want +got):\n%s", diff)
	}
}

func TestChunkedScanRejectsTooManyAxes(t *testing.T) {
	h := newHarness(t, twoAxisSpec(t))
	p := h.params(NeverPause{})
	p.Fragment = nil
	p.Target = loopbackTarget(1)
	r, err := New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = r.Run(context.Background())
	if !scan.IsConfigError(err) {
		t.Fatalf("Run error = %v, want a configuration error", err)
	}
	if got := h.xSink.Len(); got != 0 {
		t.Errorf("axis sink received %d values before the capability check", got)
	}
}

func TestChunkedScanCoercesIntegerAxis(t *testing.T) {
	gen, err := scan.NewLinear(0, 3, 7, false)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	spec := &scan.Spec{
		Axes: []scan.Axis{{
			Schema:    param.Schema{FQN: "frag.n", Type: "int"},
			Path:      "frag",
			Store:     param.NewIntStore(0),
			Generator: gen,
		}},
		Options: scan.Options{NumRepeats: 1},
	}
	nSink := sink.NewMemorySink()
	var targetSaw []float64
	target := executor.NewLoopback(func(ctx context.Context, point []float64) (executor.PointResults, error) {
		targetSaw = append(targetSaw, point[0])
		return executor.PointResults{}, nil
	}, 0)
	r, err := New(Params{
		Spec:      spec,
		Target:    target,
		Scheduler: NeverPause{},
		AxisSinks: []sink.Sink{nSink},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustRun(t, r)

	for i, v := range nSink.Values() {
		if v != math.Trunc(v) {
			t.Errorf("sink value %d = %v, not an integer", i, v)
		}
	}
	if diff := cmp.Diff(targetSaw, nSink.Values()); diff != "" {
		t.Errorf("target and sink saw different values (-target +sink):\n%s", diff)
	}
}

// flakyTarget fails RunChunk after a set number of acks on selected
// attempts, mimicking a dropped executor connection mid-chunk.
type flakyTarget struct {
	inner    executor.Target
	failures int // attempts to fail before succeeding
	failAt   int // acks to deliver before failing
	attempts int
}

func (f *flakyTarget) MaxAxes(ctx context.Context) (int, error) {
	return f.inner.MaxAxes(ctx)
}

func (f *flakyTarget) RunChunk(ctx context.Context, axes [][]float64, done func(results executor.PointResults)) error {
	f.attempts++
	if f.attempts > f.failures {
		return f.inner.RunChunk(ctx, axes, done)
	}
	acked := 0
	truncated := make([][]float64, len(axes))
	for a := range axes {
		n := f.failAt
		if n > len(axes[a]) {
			n = len(axes[a])
		}
		truncated[a] = axes[a][:n]
	}
	if err := f.inner.RunChunk(ctx, truncated, func(results executor.PointResults) {
		acked++
		done(results)
	}); err != nil {
		return err
	}
	return errors.New("connection reset")
}

func TestChunkedScanRetriesFailedChunkWithoutDuplicates(t *testing.T) {
	h := newHarness(t, twoAxisSpec(t))
	p := h.params(NeverPause{})
	p.Fragment = nil
	p.Target = &flakyTarget{inner: loopbackTarget(0), failures: 1, failAt: 2}
	p.Config.ChunkSize = 5
	r, err := New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustRun(t, r)

	if got := r.State(); got != Completed {
		t.Fatalf("state = %v, want %v", got, Completed)
	}
	// Delivered exactly once each, in order, despite the mid-chunk failure.
	wantOut := []float64{1, 2, 11, 12, 21, 22, 31, 32}
	if diff := cmp.Diff(wantOut, h.outSink.Values()); diff != "" {
		t.Errorf("readout after retry mismatch (-want +got):\n%s", diff)
	}
}

func TestChunkedScanGivesUpAfterRetryBudget(t *testing.T) {
	h := newHarness(t, twoAxisSpec(t))
	p := h.params(NeverPause{})
	p.Fragment = nil
	p.Target = &flakyTarget{inner: loopbackTarget(0), failures: 100, failAt: 0}
	r, err := New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = r.Run(context.Background())
	if err == nil {
		t.Fatal("permanently failing target succeeded")
	}
	if r.Delivered() != 0 {
		t.Errorf("Delivered() = %d, want 0", r.Delivered())
	}
}

// #endregion remote path

// #region continuous

func TestContinuousScanRunsUntilPause(t *testing.T) {
	out := sink.NewResultChannel("readout", "")
	outSink := sink.NewMemorySink()
	out.SetSink(outSink)
	phase := sink.NewMemorySink()
	calls := 0
	r, err := New(Params{
		Spec: &scan.Spec{Options: scan.Options{NumRepeats: 1, ContinuousWithoutAxes: true}},
		Fragment: FragmentFunc(func(ctx context.Context) error {
			calls++
			out.Push(float64(calls))
			return nil
		}),
		Scheduler: &pauseAfter{n: 6},
		AxisSinks: nil,
		Channels:  []*sink.ResultChannel{out},
		PhaseSink: phase,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustRun(t, r)

	if got := r.State(); got != Paused {
		t.Fatalf("state = %v, want %v", got, Paused)
	}
	if calls != 5 {
		t.Errorf("measurement ran %d times, want 5", calls)
	}
	wantPhase := []float64{1, 0, 1, 0, 1}
	if diff := cmp.Diff(wantPhase, phase.Values()); diff != "" {
		t.Errorf("phase toggles mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroAxisScanRunsRepeatsAndCompletes(t *testing.T) {
	calls := 0
	r, err := New(Params{
		Spec: &scan.Spec{Options: scan.Options{NumRepeats: 3}},
		Fragment: FragmentFunc(func(ctx context.Context) error {
			calls++
			return nil
		}),
		Scheduler: NeverPause{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustRun(t, r)

	if got := r.State(); got != Completed {
		t.Fatalf("state = %v, want %v", got, Completed)
	}
	if calls != 3 {
		t.Errorf("measurement ran %d times, want 3", calls)
	}
}

// #endregion continuous

// #region lifecycle

func TestRunAfterCompletionFails(t *testing.T) {
	r, err := New(Params{
		Spec:      &scan.Spec{Options: scan.Options{NumRepeats: 1}},
		Fragment:  FragmentFunc(func(ctx context.Context) error { return nil }),
		Scheduler: NeverPause{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustRun(t, r)
	if err := r.Run(context.Background()); err == nil {
		t.Fatal("Run on a completed scan succeeded, want error")
	}
}

func TestSeedIsRecordedForReplay(t *testing.T) {
	spec := twoAxisSpec(t)
	spec.Options.RandomiseOrderGlobally = true
	h := newHarness(t, spec)
	r, err := New(h.params(NeverPause{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustRun(t, r)
	seed := r.Seed()

	replaySpec := twoAxisSpec(t)
	replaySpec.Options.RandomiseOrderGlobally = true
	replaySpec.Options.Seed = &seed
	h2 := newHarness(t, replaySpec)
	r2, err := New(h2.params(NeverPause{}))
	if err != nil {
		t.Fatalf("New replay runner: %v", err)
	}
	mustRun(t, r2)

	if diff := cmp.Diff(h.xSink.Values(), h2.xSink.Values()); diff != "" {
		t.Errorf("replay x order diverges (-first +replay):\n%s", diff)
	}
	if diff := cmp.Diff(h.outSink.Values(), h2.outSink.Values()); diff != "" {
		t.Errorf("replay readout diverges (-first +replay):\n%s", diff)
	}
}

// #endregion lifecycle
