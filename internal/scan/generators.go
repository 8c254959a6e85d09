package scan

import (
	"math"
	"math/rand"
)

// #region generator-interface

// Limits describes the bounds of a generator for metadata purposes, without
// materializing its point sequence. Range-shaped generators fill Min/Max
// (and Increment when the spacing is uniform); discrete generators fill
// Values instead.
type Limits struct {
	Min       *float64  `json:"min,omitempty"`
	Max       *float64  `json:"max,omitempty"`
	Increment float64   `json:"increment,omitempty"`
	Values    []float64 `json:"values,omitempty"`
}

// Generator produces the lazy, finite sequence of values for one scan axis.
//
// Implementations must be pure: re-invocation for metadata purposes never
// perturbs iteration, and randomised variants draw only from the rng passed
// in, never from ambient global randomness.
type Generator interface {
	// PointsForLevel returns the axis values for one refinement level.
	// Level 0 is the coarsest pass; generators without refinement support
	// return an empty slice for higher levels.
	PointsForLevel(level int, rng *rand.Rand) []float64

	// HasLevel reports whether the generator produces any points at the
	// given refinement level.
	HasLevel(level int) bool

	// DescribeLimits returns the descriptive bounds of the generator.
	DescribeLimits() Limits
}

// #endregion generator-interface

// #region helpers

func checkFinite(name string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return configErrorf("%s: bound %v is not finite", name, v)
		}
	}
	return nil
}

func linspace(start, stop float64, n int) []float64 {
	pts := make([]float64, n)
	if n == 1 {
		pts[0] = start
		return pts
	}
	step := (stop - start) / float64(n-1)
	for i := range pts {
		pts[i] = start + float64(i)*step
	}
	return pts
}

func maybeShuffle(pts []float64, randomise bool, rng *rand.Rand) []float64 {
	if randomise {
		rng.Shuffle(len(pts), func(i, j int) {
			pts[i], pts[j] = pts[j], pts[i]
		})
	}
	return pts
}

func f64ptr(v float64) *float64 { return &v }

// #endregion helpers

// #region linear

// Linear generates NumPoints evenly spaced values from Start to Stop
// (inclusive). With Randomise set, the per-axis order is shuffled.
type Linear struct {
	Start     float64
	Stop      float64
	NumPoints int
	Randomise bool
}

// NewLinear validates the range and constructs a Linear generator.
// A single-point range yields the start value only.
func NewLinear(start, stop float64, numPoints int, randomise bool) (*Linear, error) {
	if err := checkFinite("linear", start, stop); err != nil {
		return nil, err
	}
	if numPoints < 1 {
		return nil, configErrorf("linear: num_points %d < 1", numPoints)
	}
	return &Linear{Start: start, Stop: stop, NumPoints: numPoints, Randomise: randomise}, nil
}

func (g *Linear) PointsForLevel(level int, rng *rand.Rand) []float64 {
	if level != 0 {
		return nil
	}
	return maybeShuffle(linspace(g.Start, g.Stop, g.NumPoints), g.Randomise, rng)
}

func (g *Linear) HasLevel(level int) bool { return level == 0 }

func (g *Linear) DescribeLimits() Limits {
	lo, hi := math.Min(g.Start, g.Stop), math.Max(g.Start, g.Stop)
	l := Limits{Min: f64ptr(lo), Max: f64ptr(hi)}
	if g.NumPoints > 1 {
		l.Increment = math.Abs(g.Stop-g.Start) / float64(g.NumPoints-1)
	}
	return l
}

// #endregion linear

// #region linear-positive-step

// LinearPositiveStep is a Linear range that is always traversed from its
// lower to its upper bound, regardless of how Start/Stop were specified.
// Useful for targets where only monotonically increasing sweeps are valid.
type LinearPositiveStep struct {
	inner Linear
}

// NewLinearPositiveStep validates the range and constructs the generator.
func NewLinearPositiveStep(start, stop float64, numPoints int) (*LinearPositiveStep, error) {
	lin, err := NewLinear(start, stop, numPoints, false)
	if err != nil {
		return nil, err
	}
	if lin.Start > lin.Stop {
		lin.Start, lin.Stop = lin.Stop, lin.Start
	}
	return &LinearPositiveStep{inner: *lin}, nil
}

func (g *LinearPositiveStep) PointsForLevel(level int, rng *rand.Rand) []float64 {
	return g.inner.PointsForLevel(level, rng)
}

func (g *LinearPositiveStep) HasLevel(level int) bool { return g.inner.HasLevel(level) }

func (g *LinearPositiveStep) DescribeLimits() Limits { return g.inner.DescribeLimits() }

// #endregion linear-positive-step

// #region refining-linear

// RefiningLinear subdivides the interval [Lower, Upper] progressively:
// level 0 yields the two endpoints, and each further level yields the
// midpoints between all points emitted so far.
type RefiningLinear struct {
	Lower float64
	Upper float64
}

// NewRefiningLinear validates the interval and constructs the generator.
func NewRefiningLinear(lower, upper float64) (*RefiningLinear, error) {
	if err := checkFinite("refining", lower, upper); err != nil {
		return nil, err
	}
	if lower > upper {
		lower, upper = upper, lower
	}
	return &RefiningLinear{Lower: lower, Upper: upper}, nil
}

func (g *RefiningLinear) PointsForLevel(level int, rng *rand.Rand) []float64 {
	if level == 0 {
		return []float64{g.Lower, g.Upper}
	}
	d := (g.Upper - g.Lower) / math.Pow(2, float64(level))
	n := 1 << (level - 1)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = g.Lower + d*float64(2*i+1)
	}
	return pts
}

func (g *RefiningLinear) HasLevel(level int) bool { return true }

func (g *RefiningLinear) DescribeLimits() Limits {
	return Limits{Min: f64ptr(g.Lower), Max: f64ptr(g.Upper)}
}

// #endregion refining-linear

// #region list

// List generates an explicit, caller-supplied set of values.
type List struct {
	Values    []float64
	Randomise bool
}

// NewList validates the values and constructs a List generator.
func NewList(values []float64, randomise bool) (*List, error) {
	if len(values) == 0 {
		return nil, configErrorf("list: no values given")
	}
	if err := checkFinite("list", values...); err != nil {
		return nil, err
	}
	return &List{Values: values, Randomise: randomise}, nil
}

func (g *List) PointsForLevel(level int, rng *rand.Rand) []float64 {
	if level != 0 {
		return nil
	}
	pts := make([]float64, len(g.Values))
	copy(pts, g.Values)
	return maybeShuffle(pts, g.Randomise, rng)
}

func (g *List) HasLevel(level int) bool { return level == 0 }

func (g *List) DescribeLimits() Limits {
	vals := make([]float64, len(g.Values))
	copy(vals, g.Values)
	return Limits{Values: vals}
}

// #endregion list

// #region centered

// Centered generates NumPoints evenly spaced values across
// [Centre-HalfSpan, Centre+HalfSpan].
type Centered struct {
	Centre    float64
	HalfSpan  float64
	NumPoints int
	Randomise bool
}

// NewCentered validates the span and constructs a Centered generator.
func NewCentered(centre, halfSpan float64, numPoints int, randomise bool) (*Centered, error) {
	if err := checkFinite("centered", centre, halfSpan); err != nil {
		return nil, err
	}
	if halfSpan < 0 {
		return nil, configErrorf("centered: half_span %v < 0", halfSpan)
	}
	if numPoints < 1 {
		return nil, configErrorf("centered: num_points %d < 1", numPoints)
	}
	return &Centered{Centre: centre, HalfSpan: halfSpan, NumPoints: numPoints, Randomise: randomise}, nil
}

func (g *Centered) PointsForLevel(level int, rng *rand.Rand) []float64 {
	if level != 0 {
		return nil
	}
	pts := linspace(g.Centre-g.HalfSpan, g.Centre+g.HalfSpan, g.NumPoints)
	return maybeShuffle(pts, g.Randomise, rng)
}

func (g *Centered) HasLevel(level int) bool { return level == 0 }

func (g *Centered) DescribeLimits() Limits {
	l := Limits{Min: f64ptr(g.Centre - g.HalfSpan), Max: f64ptr(g.Centre + g.HalfSpan)}
	if g.NumPoints > 1 {
		l.Increment = 2 * g.HalfSpan / float64(g.NumPoints-1)
	}
	return l
}

// #endregion centered

// #region expanding-centered

// ExpandingCentered walks outwards from Centre in steps of Spacing: level 0
// yields the centre itself, level n the pair Centre±n*Spacing, clamped to
// the optional limits. Levels beyond both limits yield nothing.
type ExpandingCentered struct {
	Centre     float64
	Spacing    float64
	Randomise  bool
	LimitLower *float64
	LimitUpper *float64
}

// NewExpandingCentered validates spacing and limits and constructs the
// generator. Limits may be nil for an unbounded walk.
func NewExpandingCentered(centre, spacing float64, randomise bool, limitLower, limitUpper *float64) (*ExpandingCentered, error) {
	if err := checkFinite("expanding", centre, spacing); err != nil {
		return nil, err
	}
	if spacing <= 0 {
		return nil, configErrorf("expanding: spacing %v <= 0", spacing)
	}
	if limitLower != nil {
		if err := checkFinite("expanding", *limitLower); err != nil {
			return nil, err
		}
	}
	if limitUpper != nil {
		if err := checkFinite("expanding", *limitUpper); err != nil {
			return nil, err
		}
	}
	return &ExpandingCentered{
		Centre:     centre,
		Spacing:    spacing,
		Randomise:  randomise,
		LimitLower: limitLower,
		LimitUpper: limitUpper,
	}, nil
}

func (g *ExpandingCentered) PointsForLevel(level int, rng *rand.Rand) []float64 {
	if level == 0 {
		if g.inLimits(g.Centre) {
			return []float64{g.Centre}
		}
		return nil
	}
	var pts []float64
	if lo := g.Centre - float64(level)*g.Spacing; g.inLimits(lo) {
		pts = append(pts, lo)
	}
	if hi := g.Centre + float64(level)*g.Spacing; g.inLimits(hi) {
		pts = append(pts, hi)
	}
	return maybeShuffle(pts, g.Randomise, rng)
}

func (g *ExpandingCentered) HasLevel(level int) bool {
	if level == 0 {
		return g.inLimits(g.Centre)
	}
	return g.inLimits(g.Centre-float64(level)*g.Spacing) ||
		g.inLimits(g.Centre+float64(level)*g.Spacing)
}

func (g *ExpandingCentered) inLimits(v float64) bool {
	if g.LimitLower != nil && v < *g.LimitLower {
		return false
	}
	if g.LimitUpper != nil && v > *g.LimitUpper {
		return false
	}
	return true
}

func (g *ExpandingCentered) DescribeLimits() Limits {
	l := Limits{Increment: g.Spacing}
	if g.LimitLower != nil {
		l.Min = f64ptr(*g.LimitLower)
	}
	if g.LimitUpper != nil {
		l.Max = f64ptr(*g.LimitUpper)
	}
	return l
}

// #endregion expanding-centered
