package sink

// #region result-channel

// ResultChannel is a named channel the per-point fragment writes measurement
// values into. The channel buffers at most one pending value per point; the
// runner flushes it to the attached sink only after the point completes, so
// a point's axis and result values always reach their sinks together and in
// axis-then-result order.
type ResultChannel struct {
	name        string
	description string

	sink    Sink
	pending float64
	hasPend bool
	pushed  int
}

// NewResultChannel creates a result channel with the given name.
func NewResultChannel(name, description string) *ResultChannel {
	return &ResultChannel{name: name, description: description}
}

// Name returns the channel name.
func (c *ResultChannel) Name() string { return c.name }

// Description returns the channel description.
func (c *ResultChannel) Description() string { return c.description }

// SetSink attaches the sink that flushed values are delivered to.
func (c *ResultChannel) SetSink(s Sink) { c.sink = s }

// Push records the value for the current point. If the fragment pushes more
// than once per point, the last write wins.
func (c *ResultChannel) Push(v float64) {
	c.pending = v
	c.hasPend = true
}

// Flush delivers the pending value to the attached sink and clears it.
// It reports whether a value had been pushed for the point; when it returns
// false the point produced no value for this channel. Missing results are
// reported, never fabricated.
func (c *ResultChannel) Flush() bool {
	if !c.hasPend {
		return false
	}
	if c.sink != nil {
		c.sink.Push(c.pending)
	}
	c.hasPend = false
	c.pushed++
	return true
}

// Discard drops any pending value without delivering it. Used when a run is
// cancelled before the current point completed.
func (c *ResultChannel) Discard() { c.hasPend = false }

// Delivered returns how many values this channel has flushed to its sink.
func (c *ResultChannel) Delivered() int { return c.pushed }

// Describe returns the channel metadata for the scan description document.
func (c *ResultChannel) Describe() map[string]any {
	d := map[string]any{"name": c.name, "type": "float"}
	if c.description != "" {
		d["description"] = c.description
	}
	return d
}

// #endregion result-channel
