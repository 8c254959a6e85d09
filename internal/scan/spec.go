package scan

import (
	crand "crypto/rand"
	"encoding/binary"

	"github.com/mhollis/gridscan/internal/param"
)

// #region axis

// Axis binds one scanned parameter: the schema and path identify the target,
// the store applies values to it, and the generator supplies the sequence.
// Immutable once the scan starts.
type Axis struct {
	Schema    param.Schema
	Path      string
	Store     param.Store
	Generator Generator
}

// Identity returns the identity used to correlate this axis with external
// analyses.
func (a *Axis) Identity() param.Identity {
	return param.Identity{FQN: a.Schema.FQN, Path: a.Path}
}

// #endregion axis

// #region options

// Options holds the per-scan iteration settings.
type Options struct {
	// NumRepeats repeats the full point set this many times (>= 1).
	NumRepeats int
	// ContinuousWithoutAxes repeats the fragment indefinitely (until paused)
	// when the scan has no axes.
	ContinuousWithoutAxes bool
	// RandomiseOrderGlobally shuffles the complete materialized point list
	// across repeats, keyed by the resolved seed.
	RandomiseOrderGlobally bool
	// Seed drives per-axis and global shuffling. nil means resolve from
	// entropy at scan start; the resolved value is recorded here so the
	// exact point order can be reproduced on replay.
	Seed *int64
}

// ResolveSeed returns the scan seed, drawing one from entropy and recording
// it if none was set. Once resolved the seed is immutable for the run.
func (o *Options) ResolveSeed() int64 {
	if o.Seed == nil {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			panic("scan: entropy source failed: " + err.Error())
		}
		s := int64(binary.LittleEndian.Uint64(b[:]) &^ (1 << 63))
		o.Seed = &s
	}
	return *o.Seed
}

// #endregion options

// #region spec

// Spec is the immutable description of a single scan.
type Spec struct {
	Axes    []Axis
	Options Options
}

// Validate checks the spec for configuration errors before a run starts.
func (s *Spec) Validate() error {
	if s.Options.NumRepeats < 1 {
		return configErrorf("num_repeats %d < 1", s.Options.NumRepeats)
	}
	for i, ax := range s.Axes {
		if ax.Generator == nil {
			return configErrorf("axis %d (%s): no generator", i, ax.Schema.FQN)
		}
		if ax.Store == nil {
			return configErrorf("axis %d (%s): no parameter store", i, ax.Schema.FQN)
		}
	}
	return nil
}

// Identities returns the axis identities in declaration order.
func (s *Spec) Identities() []param.Identity {
	ids := make([]param.Identity, len(s.Axes))
	for i := range s.Axes {
		ids[i] = s.Axes[i].Identity()
	}
	return ids
}

// #endregion spec
