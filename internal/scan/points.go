package scan

import "math/rand"

// #region points-iterator

// Points is a single-pass iterator over the combined scan points. It can only
// be restarted by reconstructing it via GeneratePoints; consumers must not
// assume multiple independent cursors over one instance.
type Points struct {
	// Unshuffled path: odometer over the per-axis sequences.
	axes    [][]float64
	repeats int
	repeat  int
	idx     []int
	done    bool

	// Shuffled path: fully materialized order.
	shuffled [][]float64
	pos      int
}

// NumAxes returns the dimensionality of the points produced.
func (p *Points) NumAxes() int {
	if p.shuffled != nil {
		if len(p.shuffled) == 0 {
			return len(p.axes)
		}
		return len(p.shuffled[0])
	}
	return len(p.axes)
}

// Next returns the next point in scan order, one value per axis in
// axis-declaration order. ok is false once the sequence is exhausted.
func (p *Points) Next() (point []float64, ok bool) {
	if p.shuffled != nil {
		if p.pos >= len(p.shuffled) {
			return nil, false
		}
		pt := p.shuffled[p.pos]
		p.pos++
		return pt, true
	}

	if p.done {
		return nil, false
	}
	pt := make([]float64, len(p.axes))
	for i, vs := range p.axes {
		pt[i] = vs[p.idx[i]]
	}
	p.advance()
	return pt, true
}

// advance steps the odometer: last axis fastest, then earlier axes, then the
// repeat counter.
func (p *Points) advance() {
	for i := len(p.idx) - 1; i >= 0; i-- {
		p.idx[i]++
		if p.idx[i] < len(p.axes[i]) {
			return
		}
		p.idx[i] = 0
	}
	p.repeat++
	if p.repeat >= p.repeats {
		p.done = true
	}
}

// #endregion points-iterator

// #region generate-points

// GeneratePoints builds the point sequence for a spec: the level-0 cross
// product of all axis generators, repeated NumRepeats times (repeat-major)
// and globally shuffled when requested. All randomness is drawn from a
// source seeded with the spec's resolved seed, so two calls with identical
// axes and options produce identical sequences.
func GeneratePoints(spec *Spec) (*Points, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	seed := spec.Options.ResolveSeed()
	rng := rand.New(rand.NewSource(seed))

	axes := make([][]float64, len(spec.Axes))
	for i, ax := range spec.Axes {
		axes[i] = ax.Generator.PointsForLevel(0, rng)
	}

	p := &Points{axes: axes, repeats: spec.Options.NumRepeats, idx: make([]int, len(axes))}
	for _, vs := range axes {
		if len(vs) == 0 {
			p.done = true
			break
		}
	}

	if !spec.Options.RandomiseOrderGlobally {
		return p, nil
	}

	// Global shuffle needs the full list: materialize, then Fisher-Yates.
	var all [][]float64
	for {
		pt, ok := p.Next()
		if !ok {
			break
		}
		all = append(all, pt)
	}
	rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	if all == nil {
		all = [][]float64{}
	}
	return &Points{axes: axes, shuffled: all}, nil
}

// #endregion generate-points
