package replay

import (
	"context"
	"fmt"
	"sort"

	"github.com/mhollis/gridscan/internal/runner"
	"github.com/mhollis/gridscan/internal/scan"
	"github.com/mhollis/gridscan/internal/sink"
)

// #region types

// Result captures the outcome of replaying one fixture.
type Result struct {
	Points        int
	AxisValues    [][]float64
	ChannelValues map[string][]float64
	Mismatches    []string
}

// OK reports whether the replay reproduced the recording exactly.
func (r *Result) OK() bool { return len(r.Mismatches) == 0 }

// #endregion types

// #region replay

// Replay re-executes a fixture's scan entirely in memory: the point order
// is regenerated from the document and its recorded seed, the recorded
// result values are played back per point, and every delivery is compared
// against the recording. Mismatches are collected, not fatal, so one run
// reports all drift at once.
func Replay(f *Fixture) (*Result, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	spec, err := f.Scan.BuildSpec()
	if err != nil {
		return nil, err
	}

	axisSinks := make([]sink.Sink, len(spec.Axes))
	axisMems := make([]*sink.MemorySink, len(spec.Axes))
	for i := range axisSinks {
		axisMems[i] = sink.NewMemorySink()
		axisSinks[i] = axisMems[i]
	}

	names := make([]string, 0, len(f.Results))
	for name := range f.Results {
		names = append(names, name)
	}
	sort.Strings(names)
	channels := make([]*sink.ResultChannel, len(names))
	chanMems := make(map[string]*sink.MemorySink, len(names))
	for i, name := range names {
		channels[i] = sink.NewResultChannel(name, "")
		mem := sink.NewMemorySink()
		channels[i].SetSink(mem)
		chanMems[name] = mem
	}

	// Playback fragment: pushes the recorded value for the current point
	// into every channel. Points past the end of the recording get no value,
	// which surfaces as a point-count mismatch rather than a panic.
	point := 0
	frag := runner.FragmentFunc(func(ctx context.Context) error {
		for i, name := range names {
			if point < len(f.Results[name]) {
				channels[i].Push(f.Results[name][point])
			}
		}
		point++
		return nil
	})

	r, err := runner.New(runner.Params{
		Spec:      spec,
		Fragment:  frag,
		Scheduler: runner.NeverPause{},
		AxisSinks: axisSinks,
		Channels:  channels,
	})
	if err != nil {
		return nil, err
	}
	if err := r.Run(context.Background()); err != nil {
		return nil, fmt.Errorf("replay run: %w", err)
	}

	res := &Result{
		Points:        r.Delivered(),
		AxisValues:    make([][]float64, len(axisMems)),
		ChannelValues: make(map[string][]float64, len(chanMems)),
	}
	for i, mem := range axisMems {
		res.AxisValues[i] = mem.Values()
	}
	for name, mem := range chanMems {
		res.ChannelValues[name] = mem.Values()
	}

	if res.Points != f.NumPoints() {
		res.Mismatches = append(res.Mismatches, fmt.Sprintf(
			"replay produced %d points, recording has %d", res.Points, f.NumPoints()))
		return res, nil
	}
	for i, recorded := range f.Axes {
		for p, want := range recorded {
			if got := res.AxisValues[i][p]; got != want {
				res.Mismatches = append(res.Mismatches, fmt.Sprintf(
					"axis %d point %d: replayed %v, recorded %v", i, p, got, want))
			}
		}
	}
	for _, name := range names {
		for p, want := range f.Results[name] {
			if got := res.ChannelValues[name][p]; got != want {
				res.Mismatches = append(res.Mismatches, fmt.Sprintf(
					"channel %q point %d: replayed %v, recorded %v", name, p, got, want))
			}
		}
	}
	return res, nil
}

// #endregion replay

// #region record

// Record assembles a fixture from a finished run's deliveries. The document
// must carry the resolved seed; the spec records it during point
// generation, so callers pass the document back through after the run.
func Record(description string, doc scan.Document, axes [][]float64, results map[string][]float64) (*Fixture, error) {
	f := &Fixture{
		Description: description,
		Scan:        doc,
		Axes:        axes,
		Results:     results,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// #endregion record
