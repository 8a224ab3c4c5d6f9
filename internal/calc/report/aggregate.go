// Package report assembles the per-calculator outputs into one report
// object with units and method provenance, and renders it as JSON or
// PDF. Aggregation is pure combination: no numbers are computed here
// beyond collecting warnings.
package report

import (
	"fmt"

	"Stratum/internal/calc/bearing"
	"Stratum/internal/calc/liquefaction"
	"Stratum/internal/calc/settlement"
	"Stratum/internal/calc/sliding"
	"Stratum/internal/soil"
)

// Units documents the unit of every reported quantity so downstream
// consumers need no out-of-band convention.
var Units = map[string]string{
	"bearing_capacity": "kPa",
	"settlement":       "m",
	"stress":           "kPa",
	"unit_weight":      "kN/m3",
	"subgrade":         "kN/m3",
	"depth":            "m",
	"force":            "kN",
}

// Report is the combined, serializable result object. Sliding is
// optional; the three core results are required.
type Report struct {
	Units   map[string]string `json:"units"`
	Methods []string          `json:"methods"`

	Bearing      *bearing.Result      `json:"bearing"`
	Settlement   *settlement.Result   `json:"settlement"`
	Liquefaction *liquefaction.Result `json:"liquefaction"`
	Sliding      *sliding.Result      `json:"sliding,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// Aggregate combines the module results. Each of the three core inputs
// is required; a missing one aborts with ErrIncompleteInput naming it.
func Aggregate(b *bearing.Result, s *settlement.Result, l *liquefaction.Result) (Report, error) {
	switch {
	case b == nil:
		return Report{}, fmt.Errorf("%w: bearing capacity result missing", soil.ErrIncompleteInput)
	case s == nil:
		return Report{}, fmt.Errorf("%w: settlement result missing", soil.ErrIncompleteInput)
	case l == nil:
		return Report{}, fmt.Errorf("%w: liquefaction result missing", soil.ErrIncompleteInput)
	}

	rep := Report{
		Units:        Units,
		Bearing:      b,
		Settlement:   s,
		Liquefaction: l,
	}
	rep.Methods = append(rep.Methods, b.Method)
	rep.Methods = append(rep.Methods, s.Methods...)
	rep.Methods = append(rep.Methods, l.Method)

	rep.Warnings = append(rep.Warnings, b.Warnings...)
	rep.Warnings = append(rep.Warnings, s.Warnings...)
	return rep, nil
}

// WithSliding attaches the optional sliding check.
func (r Report) WithSliding(sl *sliding.Result) Report {
	r.Sliding = sl
	if sl != nil {
		r.Methods = append(r.Methods, sl.Method)
		r.Warnings = append(r.Warnings, sl.Warnings...)
	}
	return r
}
