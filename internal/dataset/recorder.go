package dataset

import (
	"log"

	"github.com/mhollis/gridscan/internal/sink"
)

// #region recorder

// Recorder accumulates one point's deliveries and persists them as a unit.
// Its axis and channel sinks are wired into the runner alongside (or
// instead of) the in-memory ones; PointDone fires after a point's sinks
// have all been served and commits the point to the store.
//
// Persistence failures are logged, not propagated: a broken disk must not
// abort a running measurement.
type Recorder struct {
	store   *Store
	runID   string
	axes    []float64
	results map[string]float64
}

// NewRecorder creates a Recorder for one run with the given axis count.
func NewRecorder(store *Store, runID string, numAxes int) *Recorder {
	return &Recorder{
		store:   store,
		runID:   runID,
		axes:    make([]float64, numAxes),
		results: make(map[string]float64),
	}
}

// AxisSink returns the sink that captures one axis's coordinate.
func (r *Recorder) AxisSink(axis int) sink.Sink {
	return sink.Func(func(v float64) { r.axes[axis] = v })
}

// ChannelSink returns the sink that captures one result channel's value.
// Channels with a missing result for a point simply leave no entry.
func (r *Recorder) ChannelSink(name string) sink.Sink {
	return sink.Func(func(v float64) { r.results[name] = v })
}

// PointDone commits the accumulated point under the given index.
func (r *Recorder) PointDone(index int) {
	if err := r.store.AppendPoint(r.runID, index, r.axes, r.results); err != nil {
		log.Printf("[DATA] persist point %d: %v", index, err)
	}
	r.results = make(map[string]float64)
}

// Event appends to the run's lifecycle log, satisfying the runner's run
// log surface.
func (r *Recorder) Event(event, detail string) {
	if err := r.store.LogEvent(r.runID, event, detail); err != nil {
		log.Printf("[DATA] log event %q: %v", event, err)
	}
}

// #endregion recorder

// #region tee

// Tee fans one delivery out to several sinks, so a value can land in both
// an in-memory sink and the recorder.
func Tee(sinks ...sink.Sink) sink.Sink {
	return sink.Func(func(v float64) {
		for _, s := range sinks {
			s.Push(v)
		}
	})
}

// #endregion tee
