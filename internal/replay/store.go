package replay

import (
	"fmt"

	"github.com/mhollis/gridscan/internal/dataset"
)

// #region store-export

// FromStore assembles a replay fixture from a persisted run: the run's scan
// document with its recorded seed, plus the axis coordinates and channel
// values it stored. Runs with missing results cannot be exported, since a
// non-rectangular recording has no faithful playback.
func FromStore(store *dataset.Store, runID string) (*Fixture, error) {
	doc, err := store.Document(runID)
	if err != nil {
		return nil, err
	}
	rec, err := store.GetRun(runID)
	if err != nil {
		return nil, err
	}
	seed := rec.Seed
	doc.Seed = &seed

	axes := make([][]float64, len(doc.Axes))
	for i := range axes {
		axes[i], err = store.AxisValues(runID, i)
		if err != nil {
			return nil, err
		}
	}

	channels, err := store.Channels(runID)
	if err != nil {
		return nil, err
	}
	results := make(map[string][]float64, len(channels))
	for _, name := range channels {
		results[name], err = store.ChannelValues(runID, name)
		if err != nil {
			return nil, err
		}
	}
	if len(results) == 0 {
		results = nil
	}

	f := &Fixture{
		Description: fmt.Sprintf("run %s (%s)", runID, rec.FragmentFQN),
		Scan:        *doc,
		Axes:        axes,
		Results:     results,
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("run %s is not replayable: %w", runID, err)
	}
	return f, nil
}

// #endregion store-export
