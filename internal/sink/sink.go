package sink

// #region sink-interface

// Sink is an ordered, append-only receiver of values. The scan runner pushes
// exactly one value per delivered point, in point order; a Sink must not
// block indefinitely (if it can, that is its owner's responsibility).
type Sink interface {
	Push(v float64)
}

// #endregion sink-interface

// #region memory-sink

// MemorySink accumulates every pushed value in order. Used for tests,
// replay verification, and in-memory consumers.
type MemorySink struct {
	values []float64
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Push(v float64) {
	s.values = append(s.values, v)
}

// Values returns the pushed values in push order.
func (s *MemorySink) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Len returns the number of values pushed so far.
func (s *MemorySink) Len() int { return len(s.values) }

// #endregion memory-sink

// #region last-value-sink

// LastValueSink keeps only the most recent value, for single-value broadcast
// consumers that display the latest point rather than the history.
type LastValueSink struct {
	v   float64
	set bool
}

// NewLastValueSink creates an empty LastValueSink.
func NewLastValueSink() *LastValueSink {
	return &LastValueSink{}
}

func (s *LastValueSink) Push(v float64) {
	s.v = v
	s.set = true
}

// Last returns the most recent value and whether any value was pushed.
func (s *LastValueSink) Last() (float64, bool) {
	return s.v, s.set
}

// #endregion last-value-sink

// #region func-sink

// Func adapts a function to the Sink interface.
type Func func(v float64)

func (f Func) Push(v float64) { f(v) }

// #endregion func-sink
