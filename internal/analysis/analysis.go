// Package analysis filters externally supplied default-analysis
// descriptors down to those applicable to a scan's axis set. The analyses
// themselves run elsewhere; this package only decides applicability and
// carries their describe-only payloads through to the scan metadata.
package analysis

import (
	"github.com/mhollis/gridscan/internal/param"
)

// #region types

// Annotation is an opaque describe-only payload contributed by an
// analysis, passed through to the presentation layer untouched.
type Annotation map[string]any

// OnlineFit describes one named online analysis. The schema is a caller
// concern; names must be unique across the analyses kept for a scan.
type OnlineFit map[string]any

// Analysis declares which axis identities an externally computed default
// analysis needs, plus what it contributes to the scan description.
type Analysis struct {
	RequiredAxes []param.Identity
	Annotations  []Annotation
	Online       map[string]OnlineFit
}

// #endregion types

// #region filter

// Applicable reports whether every axis the analysis requires is among the
// scanned identities. An analysis with no required axes is always
// applicable.
func (a *Analysis) Applicable(scanned []param.Identity) bool {
	for _, req := range a.RequiredAxes {
		found := false
		for _, id := range scanned {
			if id == req {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FilterDefault keeps the analyses whose required axis identities are a
// subset of the scanned ones, preserving order. Pure: neither input is
// modified.
func FilterDefault(analyses []Analysis, scanned []param.Identity) []Analysis {
	kept := make([]Analysis, 0, len(analyses))
	for _, a := range analyses {
		if a.Applicable(scanned) {
			kept = append(kept, a)
		}
	}
	return kept
}

// #endregion filter
