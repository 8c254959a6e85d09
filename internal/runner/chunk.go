package runner

// #region chunk

// chunk is the bounded FIFO of points that have been handed to the execution
// target but not yet reported complete. Points enter at the tail in scan
// order and leave head-first on explicit completion acknowledgment; there is
// no other removal operation, which is what makes resuming after a pause or
// a dropped connection safe.
type chunk struct {
	points [][]float64
	cap    int
}

func newChunk(capacity int) *chunk {
	return &chunk{cap: capacity}
}

func (c *chunk) len() int   { return len(c.points) }
func (c *chunk) full() bool { return len(c.points) >= c.cap }

// pushBack appends a point at the tail. Panics when the buffer is full:
// the fill loop is the only producer and checks capacity first.
func (c *chunk) pushBack(pt []float64) {
	if c.full() {
		panic("runner: chunk overflow")
	}
	c.points = append(c.points, pt)
}

// head returns the next undelivered point without removing it.
func (c *chunk) head() ([]float64, bool) {
	if len(c.points) == 0 {
		return nil, false
	}
	return c.points[0], true
}

// popFront removes and returns the head point. Only called on completion
// acknowledgment.
func (c *chunk) popFront() []float64 {
	if len(c.points) == 0 {
		panic("runner: pop from empty chunk")
	}
	pt := c.points[0]
	c.points = c.points[1:]
	return pt
}

// snapshot returns the buffered points as one slice per axis, the form the
// execution target consumes.
func (c *chunk) snapshot(numAxes int) [][]float64 {
	axes := make([][]float64, numAxes)
	for a := range axes {
		axes[a] = make([]float64, len(c.points))
		for i, pt := range c.points {
			axes[a][i] = pt[a]
		}
	}
	return axes
}

// #endregion chunk
