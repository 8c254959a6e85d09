// Package replay records a scan run to a JSON fixture and re-executes it
// in memory, verifying that the declarative scan document plus its recorded
// seed reproduces the exact point order and deliveries. Fixtures double as
// regression baselines: a change to generator or ordering semantics shows
// up as a replay mismatch.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mhollis/gridscan/internal/scan"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: the scan
// document (with the resolved seed baked in) and the deliveries the
// original run produced.
type Fixture struct {
	Description string               `json:"description"`
	Scan        scan.Document        `json:"scan"`
	Axes        [][]float64          `json:"axes"`
	Results     map[string][]float64 `json:"results,omitempty"`
}

// NumPoints returns the recorded point count.
func (f *Fixture) NumPoints() int {
	if len(f.Axes) == 0 {
		return 0
	}
	return len(f.Axes[0])
}

// #endregion fixture-types

// #region fixture-io

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-io

// #region validate

// Validate checks a fixture's internal consistency before replay.
func (f *Fixture) Validate() error {
	if f.Scan.Seed == nil {
		return fmt.Errorf("fixture has no recorded seed")
	}
	if len(f.Axes) != len(f.Scan.Axes) {
		return fmt.Errorf("fixture records %d axes, scan document has %d",
			len(f.Axes), len(f.Scan.Axes))
	}
	n := f.NumPoints()
	for i, vs := range f.Axes {
		if len(vs) != n {
			return fmt.Errorf("axis %d records %d points, axis 0 records %d", i, len(vs), n)
		}
	}
	for name, vs := range f.Results {
		if len(vs) != n {
			return fmt.Errorf("channel %q records %d values for %d points", name, len(vs), n)
		}
	}
	return nil
}

// #endregion validate
