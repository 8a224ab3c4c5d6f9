// Package siteclass assigns the local soil class (ZC, ZD or ZE) from the
// harmonic average of undrained shear strength or SPT blow count over the
// top 30 m of the profile, the seismic-code site classification for
// soil-governed profiles.
package siteclass

import (
	"fmt"
	"math"

	"Stratum/internal/soil"
)

const (
	MethodByCu  = "harmonic-cu30"
	MethodBySPT = "harmonic-n30"
)

// Basis selects which in-situ parameter drives the classification.
type Basis string

const (
	BasisCu  Basis = "cu"
	BasisSPT Basis = "spt"
)

// averagingDepthM is the depth window of the harmonic average.
const averagingDepthM = 30.0

// Class thresholds. Cu in kPa, N in blows; layers softer than the ZD
// floor classify as ZE.
const (
	cuClassZCKPa = 250.0
	cuClassZDKPa = 70.0
	nClassZC     = 50.0
	nClassZD     = 15.0
)

type Input struct {
	Layers      []soil.Layer `json:"layers"`
	WaterTableM float64      `json:"water_table_m"`
	Basis       Basis        `json:"basis,omitempty"`
}

// LayerShare is one layer's contribution to the harmonic average.
// Layers without the driving parameter are excluded and do not appear.
type LayerShare struct {
	FromDepthM float64 `json:"from_depth_m"`
	ToDepthM   float64 `json:"to_depth_m"`
	ThicknessM float64 `json:"thickness_m"`
	Value      float64 `json:"value"`
	HOverValue float64 `json:"h_over_value"`
}

type Result struct {
	Method        string       `json:"method"`
	Layers        []LayerShare `json:"layers"`
	SumHOverValue float64      `json:"sum_h_over_value"`
	Average30     float64      `json:"average_30"`
	Class         string       `json:"soil_class"`
}

func Calculate(in Input) (Result, error) {
	profile, err := soil.NewProfile(in.Layers, in.WaterTableM)
	if err != nil {
		return Result{}, err
	}
	return Classify(profile, in.Basis)
}

// Classify computes the local soil class on the requested basis. An
// empty basis picks SPT when any layer carries a blow count, otherwise
// undrained strength.
func Classify(p *soil.Profile, basis Basis) (Result, error) {
	switch basis {
	case BasisCu:
		return classify(p, MethodByCu, func(l soil.Layer) float64 { return l.CohesionKPa }, cuClassZCKPa, cuClassZDKPa)
	case BasisSPT:
		return classify(p, MethodBySPT, func(l soil.Layer) float64 { return l.SPTBlowCount }, nClassZC, nClassZD)
	case "":
		for _, l := range p.Layers {
			if l.SPTBlowCount > 0 {
				return Classify(p, BasisSPT)
			}
		}
		return Classify(p, BasisCu)
	}
	return Result{}, fmt.Errorf("%w: classification basis %q", soil.ErrInvalidInput, basis)
}

// classify harmonically averages the property over [0, 30 m]. The
// denominator is the full window depth even when some layers carry no
// value, so unparameterized layers drag the average down rather than
// vanish from it.
func classify(p *soil.Profile, method string, property func(soil.Layer) float64, zc, zd float64) (Result, error) {
	res := Result{Method: method}

	window := math.Min(p.DepthM(), averagingDepthM)
	for _, l := range p.Layers {
		thickness := math.Min(l.ToDepthM, window) - l.FromDepthM
		if thickness <= 0 {
			break
		}
		value := property(l)
		if value <= 0 {
			continue
		}
		share := LayerShare{
			FromDepthM: l.FromDepthM,
			ToDepthM:   l.FromDepthM + thickness,
			ThicknessM: thickness,
			Value:      value,
			HOverValue: thickness / value,
		}
		res.Layers = append(res.Layers, share)
		res.SumHOverValue += share.HOverValue
	}

	if res.SumHOverValue <= 0 {
		return Result{}, fmt.Errorf("%w: no layer in the top %.0f m carries the classification parameter",
			soil.ErrIncompleteInput, averagingDepthM)
	}
	res.Average30 = window / res.SumHOverValue

	switch {
	case res.Average30 > zc:
		res.Class = "ZC"
	case res.Average30 >= zd:
		res.Class = "ZD"
	default:
		res.Class = "ZE"
	}
	return res, nil
}
