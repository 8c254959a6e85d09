package scan

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mhollis/gridscan/internal/param"
)

// #region document-types

// RangeSpec is the union of the range parameters understood by the generator
// variants. Which fields are required depends on the generator type.
type RangeSpec struct {
	Start      *float64  `json:"start,omitempty" yaml:"start,omitempty"`
	Stop       *float64  `json:"stop,omitempty" yaml:"stop,omitempty"`
	NumPoints  *int      `json:"num_points,omitempty" yaml:"num_points,omitempty"`
	Randomise  bool      `json:"randomise_order,omitempty" yaml:"randomise_order,omitempty"`
	Lower      *float64  `json:"lower,omitempty" yaml:"lower,omitempty"`
	Upper      *float64  `json:"upper,omitempty" yaml:"upper,omitempty"`
	Values     []float64 `json:"values,omitempty" yaml:"values,omitempty"`
	Centre     *float64  `json:"centre,omitempty" yaml:"centre,omitempty"`
	HalfSpan   *float64  `json:"half_span,omitempty" yaml:"half_span,omitempty"`
	Spacing    *float64  `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	LimitLower *float64  `json:"limit_lower,omitempty" yaml:"limit_lower,omitempty"`
	LimitUpper *float64  `json:"limit_upper,omitempty" yaml:"limit_upper,omitempty"`
}

// AxisDocument describes one scanned axis in a scan document.
type AxisDocument struct {
	Type   string       `json:"type" yaml:"type"`
	FQN    string       `json:"fqn" yaml:"fqn"`
	Path   string       `json:"path" yaml:"path"`
	Param  param.Schema `json:"param,omitempty" yaml:"param,omitempty"`
	Range  RangeSpec    `json:"range" yaml:"range"`
}

// Document is the declarative, serializable description of a scan.
type Document struct {
	Axes                   []AxisDocument `json:"axes" yaml:"axes"`
	NumRepeats             int            `json:"num_repeats" yaml:"num_repeats"`
	ContinuousWithoutAxes  bool           `json:"continuous_without_axes" yaml:"continuous_without_axes"`
	RandomiseOrderGlobally bool           `json:"randomise_order_globally" yaml:"randomise_order_globally"`
	Seed                   *int64         `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// #endregion document-types

// #region generator-registry

// BuildGenerator constructs a generator from its type string and range
// parameters. Unknown types and missing range fields are configuration
// errors.
func BuildGenerator(typeName string, r RangeSpec) (Generator, error) {
	need := func(name string, v *float64) (float64, error) {
		if v == nil {
			return 0, configErrorf("%s: missing range field %q", typeName, name)
		}
		return *v, nil
	}

	switch typeName {
	case "linear":
		start, err := need("start", r.Start)
		if err != nil {
			return nil, err
		}
		stop, err := need("stop", r.Stop)
		if err != nil {
			return nil, err
		}
		if r.NumPoints == nil {
			return nil, configErrorf("linear: missing range field \"num_points\"")
		}
		return NewLinear(start, stop, *r.NumPoints, r.Randomise)

	case "linear_positive_step":
		start, err := need("start", r.Start)
		if err != nil {
			return nil, err
		}
		stop, err := need("stop", r.Stop)
		if err != nil {
			return nil, err
		}
		if r.NumPoints == nil {
			return nil, configErrorf("linear_positive_step: missing range field \"num_points\"")
		}
		return NewLinearPositiveStep(start, stop, *r.NumPoints)

	case "refining":
		lower, err := need("lower", r.Lower)
		if err != nil {
			return nil, err
		}
		upper, err := need("upper", r.Upper)
		if err != nil {
			return nil, err
		}
		return NewRefiningLinear(lower, upper)

	case "list":
		return NewList(r.Values, r.Randomise)

	case "centered":
		centre, err := need("centre", r.Centre)
		if err != nil {
			return nil, err
		}
		halfSpan, err := need("half_span", r.HalfSpan)
		if err != nil {
			return nil, err
		}
		if r.NumPoints == nil {
			return nil, configErrorf("centered: missing range field \"num_points\"")
		}
		return NewCentered(centre, halfSpan, *r.NumPoints, r.Randomise)

	case "expanding_centered":
		centre, err := need("centre", r.Centre)
		if err != nil {
			return nil, err
		}
		spacing, err := need("spacing", r.Spacing)
		if err != nil {
			return nil, err
		}
		return NewExpandingCentered(centre, spacing, r.Randomise, r.LimitLower, r.LimitUpper)

	default:
		return nil, configErrorf("axis type %q not implemented", typeName)
	}
}

// #endregion generator-registry

// #region document-build

// BuildSpec turns a declarative document into a runnable Spec, constructing
// a generator and a parameter store for every axis. The store is initialised
// to the axis's first unshuffled point.
func (d *Document) BuildSpec() (*Spec, error) {
	if d.NumRepeats == 0 {
		d.NumRepeats = 1
	}

	axes := make([]Axis, 0, len(d.Axes))
	for i, ad := range d.Axes {
		gen, err := BuildGenerator(ad.Type, ad.Range)
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}

		schema := ad.Param
		if schema.FQN == "" {
			schema.FQN = ad.FQN
		}
		if schema.Type == "" {
			schema.Type = "float"
		}

		initial := 0.0
		if pts := gen.PointsForLevel(0, rand.New(rand.NewSource(0))); len(pts) > 0 {
			initial = pts[0]
		}
		store, err := param.StoreForType(schema.Type, initial)
		if err != nil {
			return nil, configErrorf("axis %d (%s): %v", i, schema.FQN, err)
		}

		axes = append(axes, Axis{Schema: schema, Path: ad.Path, Store: store, Generator: gen})
	}

	spec := &Spec{
		Axes: axes,
		Options: Options{
			NumRepeats:             d.NumRepeats,
			ContinuousWithoutAxes:  d.ContinuousWithoutAxes,
			RandomiseOrderGlobally: d.RandomiseOrderGlobally,
			Seed:                   d.Seed,
		},
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// LoadDocument reads a scan document from a JSON or YAML file, picking the
// format by extension.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scan document %s: %w", path, err)
	}
	var d Document
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parse scan document %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parse scan document %s: %w", path, err)
		}
	}
	return &d, nil
}

// #endregion document-build
