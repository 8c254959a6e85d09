// Package describe builds the structured metadata document for a scan:
// fragment identity, one entry per axis, the resolved seed, result channel
// descriptions under disambiguated short names, and the applicable
// default-analysis payloads. The document is what external presentation
// and storage layers consume; the engine itself never reads it back.
package describe

import (
	"fmt"
	"strings"

	"github.com/mhollis/gridscan/internal/analysis"
	"github.com/mhollis/gridscan/internal/param"
	"github.com/mhollis/gridscan/internal/scan"
	"github.com/mhollis/gridscan/internal/sink"
)

// #region types

// AxisEntry describes one scan axis in the metadata document.
type AxisEntry struct {
	Param  param.Schema `json:"param"`
	Path   string       `json:"path"`
	Limits scan.Limits  `json:"limits"`
}

// ScanDescription is the full metadata document. Axis count here always
// equals the axis count the runner iterates; both derive from the same
// resolved spec.
type ScanDescription struct {
	FragmentFQN string                        `json:"fragment_fqn"`
	Axes        []AxisEntry                   `json:"axes"`
	Seed        int64                         `json:"seed"`
	Channels    map[string]map[string]any     `json:"channels"`
	Annotations []analysis.Annotation         `json:"annotations,omitempty"`
	Online      map[string]analysis.OnlineFit `json:"online_analyses,omitempty"`
}

// #endregion types

// #region build

// Describe assembles the metadata document for a scan. It resolves the
// spec's seed if that has not happened yet, so the recorded seed always
// matches the point order actually iterated. Duplicate online-analysis
// names across the applicable analyses are an error.
func Describe(spec *scan.Spec, fragmentFQN string, channels []*sink.ResultChannel,
	analyses []analysis.Analysis) (*ScanDescription, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	axes := make([]AxisEntry, len(spec.Axes))
	for i, ax := range spec.Axes {
		axes[i] = AxisEntry{
			Param:  ax.Schema,
			Path:   ax.Path,
			Limits: ax.Generator.DescribeLimits(),
		}
	}

	names := make([]string, len(channels))
	for i, ch := range channels {
		names[i] = ch.Name()
	}
	short, err := ChannelNames(names)
	if err != nil {
		return nil, err
	}
	chans := make(map[string]map[string]any, len(channels))
	for _, ch := range channels {
		chans[short[ch.Name()]] = ch.Describe()
	}

	kept := analysis.FilterDefault(analyses, spec.Identities())
	var annotations []analysis.Annotation
	online := make(map[string]analysis.OnlineFit)
	for _, a := range kept {
		annotations = append(annotations, a.Annotations...)
		for name, fit := range a.Online {
			if _, dup := online[name]; dup {
				return nil, fmt.Errorf("describe: duplicate online analysis name %q", name)
			}
			online[name] = fit
		}
	}
	if len(online) == 0 {
		online = nil
	}

	return &ScanDescription{
		FragmentFQN: fragmentFQN,
		Axes:        axes,
		Seed:        spec.Options.ResolveSeed(),
		Channels:    chans,
		Annotations: annotations,
		Online:      online,
	}, nil
}

// #endregion build

// #region short names

// ShortSuffixes maps each slash-separated path to its shortest suffix that
// no other path in the set shares. Duplicate paths are an error since no
// suffix could ever tell them apart.
func ShortSuffixes(paths []string) (map[string]string, error) {
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if seen[p] {
			return nil, fmt.Errorf("describe: duplicate channel path %q", p)
		}
		seen[p] = true
	}
	split := make([][]string, len(paths))
	for i, p := range paths {
		split[i] = strings.Split(p, "/")
	}
	out := make(map[string]string, len(paths))
	for i, p := range paths {
		for n := 1; ; n++ {
			if n >= len(split[i]) {
				out[p] = p
				break
			}
			suffix := strings.Join(split[i][len(split[i])-n:], "/")
			unique := true
			for j, other := range split {
				if j == i || n > len(other) {
					continue
				}
				if strings.Join(other[len(other)-n:], "/") == suffix {
					unique = false
					break
				}
			}
			if unique {
				out[p] = suffix
				break
			}
		}
	}
	return out, nil
}

// ChannelNames maps channel paths to dataset-friendly short names: the
// shortest unambiguous suffix with the remaining separators flattened to
// underscores.
func ChannelNames(paths []string) (map[string]string, error) {
	suffixes, err := ShortSuffixes(paths)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(suffixes))
	for p, s := range suffixes {
		out[p] = strings.ReplaceAll(s, "/", "_")
	}
	return out, nil
}

// #endregion short names
