package param

import (
	"fmt"
	"math"
)

// #region schema

// Schema describes a scannable parameter: the fully qualified name that
// identifies the target, its value type, and display metadata.
type Schema struct {
	FQN         string `json:"fqn"`
	Type        string `json:"type"` // "float" | "int"
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit,omitempty"`
}

// Identity correlates a scan axis with external analyses: the same target
// (FQN) can be reachable via multiple structural paths, so both are needed.
type Identity struct {
	FQN  string `json:"fqn"`
	Path string `json:"path"`
}

// #endregion schema

// #region store

// Store holds the current value of one parameter binding. The scan runner
// is the only writer for the duration of a run.
type Store interface {
	// SetValue applies a new value to the binding.
	SetValue(v float64)
	// Get returns the currently applied value.
	Get() float64
	// Coerce normalizes a generic numeric value to the binding's concrete
	// representation without applying it.
	Coerce(v float64) float64
}

// FloatStore is a Store over a float64 value.
type FloatStore struct {
	v float64
}

// NewFloatStore creates a FloatStore with the given initial value.
func NewFloatStore(initial float64) *FloatStore {
	return &FloatStore{v: initial}
}

func (s *FloatStore) SetValue(v float64)       { s.v = v }
func (s *FloatStore) Get() float64             { return s.v }
func (s *FloatStore) Coerce(v float64) float64 { return v }

// IntStore is a Store over an integer value. Generic float scan values are
// truncated towards zero, matching the behaviour expected of integer-typed
// targets driven by float-valued generators.
type IntStore struct {
	v int64
}

// NewIntStore creates an IntStore with the given initial value (truncated).
func NewIntStore(initial float64) *IntStore {
	return &IntStore{v: int64(math.Trunc(initial))}
}

func (s *IntStore) SetValue(v float64)       { s.v = int64(math.Trunc(v)) }
func (s *IntStore) Get() float64             { return float64(s.v) }
func (s *IntStore) Coerce(v float64) float64 { return math.Trunc(v) }

// #endregion store

// #region store-factory

// StoreForType creates a Store matching a schema type string.
func StoreForType(typeName string, initial float64) (Store, error) {
	switch typeName {
	case "float":
		return NewFloatStore(initial), nil
	case "int":
		return NewIntStore(initial), nil
	default:
		return nil, fmt.Errorf("unknown parameter type %q", typeName)
	}
}

// #endregion store-factory
