// Package bearing computes ultimate and allowable bearing capacity of a
// footing with the general (Vesic-form) bearing capacity equation. The
// governing formula is chosen from the soil class at the foundation base:
// drained friction-angle terms for granular soil, the undrained Nc form
// for cohesive soil, and a depth-weighted blend of both parameter sets
// for mixed layers.
package bearing

import (
	"fmt"
	"math"

	"Stratum/internal/soil"
)

// Method identifiers reported on results so downstream consumers can
// audit which formula produced the numbers.
const (
	MethodDrained   = "vesic-drained"
	MethodUndrained = "vesic-undrained"
	MethodBlended   = "vesic-blended"
)

// blendZoneWidths is the influence depth of the mixed-soil parameter
// blend, in foundation widths below the base.
const blendZoneWidths = 1.5

// subgradeCapacityFactor converts allowable capacity (kPa) to a modulus
// of subgrade reaction (kN/m³), empirical design practice.
const subgradeCapacityFactor = 400.0

type Input struct {
	Layers      []soil.Layer    `json:"layers"`
	WaterTableM float64         `json:"water_table_m"`
	Foundation  soil.Foundation `json:"foundation"`
	Config      soil.Config     `json:"config"`
}

type Result struct {
	Method           string     `json:"method"`
	GoverningClass   soil.Class `json:"governing_class"`
	CohesionKPa      float64    `json:"cohesion_kpa"`
	FrictionAngleDeg float64    `json:"friction_angle_deg"`
	EffectiveGamma   float64    `json:"effective_gamma_kn_m3"`
	SurchargeKPa     float64    `json:"surcharge_kpa"`

	Factors     Factors     `json:"factors"`
	Corrections Corrections `json:"corrections"`

	UltimateKPa  float64 `json:"ultimate_kpa"`
	AllowableKPa float64 `json:"allowable_kpa"`
	SafetyFactor float64 `json:"safety_factor"`
	IsSafe       bool    `json:"is_safe"`
	SubgradeKNM3 float64 `json:"subgrade_coefficient_kn_m3"`

	Warnings []string `json:"warnings,omitempty"`
}

// Calculate builds a validated profile from the wire input and runs the
// capacity computation.
func Calculate(in Input) (Result, error) {
	profile, err := soil.NewProfile(in.Layers, in.WaterTableM)
	if err != nil {
		return Result{}, err
	}
	return Compute(profile, in.Foundation, in.Config)
}

// Compute evaluates ultimate and allowable capacity for one footing over
// a read-only profile. Deterministic: identical inputs give identical
// results. The footing is oriented internally so B <= L; the horizontal
// load components follow the swap.
func Compute(p *soil.Profile, f soil.Foundation, cfg soil.Config) (Result, error) {
	cfg = cfg.WithDefaults()
	if err := f.Validate(p); err != nil {
		return Result{}, err
	}
	if f.WidthM > f.LengthM {
		f.WidthM, f.LengthM = f.LengthM, f.WidthM
		f.HorizontalLoadXKN, f.HorizontalLoadYKN = f.HorizontalLoadYKN, f.HorizontalLoadXKN
	}

	res := Result{SafetyFactor: cfg.SafetyFactor}
	if f.Type == soil.FoundationDeep {
		res.Warnings = append(res.Warnings,
			"shallow-footing formula applied to a deep foundation; treat results as indicative")
	}

	governing, err := p.LayerAt(f.DepthM)
	if err != nil {
		return Result{}, err
	}
	res.GoverningClass = governing.Class

	phi, cohesion, err := governingParams(p, f, governing, &res)
	if err != nil {
		return Result{}, err
	}
	res.FrictionAngleDeg = phi
	res.CohesionKPa = cohesion

	surcharge, err := p.EffectiveStressAt(f.DepthM)
	if err != nil {
		return Result{}, err
	}
	res.SurchargeKPa = surcharge.EffectiveKPa

	gamma, err := effectiveGamma(p, f)
	if err != nil {
		return Result{}, err
	}
	res.EffectiveGamma = gamma

	bc := capacityFactors(phi)
	sc, sq, sg := shapeFactors(f, bc, phi)
	dc, dq, dg := depthFactors(f, phi)
	ic, iq, ig := inclinationFactors(f, bc, phi, cohesion)
	res.Factors = bc
	res.Corrections = Corrections{Sc: sc, Sq: sq, Sg: sg, Dc: dc, Dq: dq, Dg: dg, Ic: ic, Iq: iq, Ig: ig}

	if phi == 0 {
		// Undrained form: additive corrections on the Nc term, ic acting
		// as a decrement, plus the full overburden at base level.
		res.UltimateKPa = 5.14*cohesion*(1+sc+dc-ic) + surcharge.TotalKPa
	} else {
		cohesionTerm := cohesion * bc.Nc * sc * dc * ic
		surchargeTerm := surcharge.EffectiveKPa * bc.Nq * sq * dq * iq
		gammaTerm := 0.5 * gamma * f.WidthM * bc.Ng * sg * dg * ig
		res.UltimateKPa = cohesionTerm + surchargeTerm + gammaTerm
	}

	res.AllowableKPa = res.UltimateKPa / cfg.SafetyFactor
	res.IsSafe = f.PressureKPa <= res.AllowableKPa
	res.SubgradeKNM3 = subgradeCapacityFactor * res.AllowableKPa
	return res, nil
}

// governingParams resolves (phi, c) for the capacity formula. Mixed
// layers blend both parameters over the influence zone below the base.
func governingParams(p *soil.Profile, f soil.Foundation, governing soil.Layer, res *Result) (float64, float64, error) {
	switch governing.Class {
	case soil.ClassGranular:
		res.Method = MethodDrained
		if governing.FrictionAngleDeg <= 0 {
			return 0, 0, fmt.Errorf("%w: granular layer at %.2f m has no friction angle",
				soil.ErrIncompleteInput, f.DepthM)
		}
		return governing.FrictionAngleDeg, governing.CohesionKPa, nil

	case soil.ClassCohesive:
		res.Method = MethodUndrained
		if governing.CohesionKPa <= 0 {
			return 0, 0, fmt.Errorf("%w: cohesive layer at %.2f m has no undrained shear strength",
				soil.ErrIncompleteInput, f.DepthM)
		}
		return 0, governing.CohesionKPa, nil

	case soil.ClassMixed:
		res.Method = MethodBlended
		zoneBottom := f.DepthM + blendZoneWidths*f.WidthM
		if zoneBottom > p.DepthM() {
			zoneBottom = p.DepthM()
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("blend zone truncated at profile extent %.2f m", zoneBottom))
		}
		phi, err := p.WeightedAverage(func(l soil.Layer) float64 { return l.FrictionAngleDeg }, f.DepthM, zoneBottom)
		if err != nil {
			return 0, 0, err
		}
		c, err := p.WeightedAverage(func(l soil.Layer) float64 { return l.CohesionKPa }, f.DepthM, zoneBottom)
		if err != nil {
			return 0, 0, err
		}
		if phi <= 0 && c <= 0 {
			return 0, 0, fmt.Errorf("%w: mixed blend zone below %.2f m has neither friction angle nor cohesion",
				soil.ErrIncompleteInput, f.DepthM)
		}
		return phi, c, nil
	}
	return 0, 0, fmt.Errorf("%w: %q at foundation base %.2f m",
		soil.ErrUnsupportedSoilClass, governing.Class, f.DepthM)
}

// effectiveGamma averages the unit weight over the failure-wedge zone
// (base to base + B) and corrects for a water table inside it: fully
// buoyant below, moist above, linear transition in between.
func effectiveGamma(p *soil.Profile, f soil.Foundation) (float64, error) {
	zoneBottom := math.Min(f.DepthM+f.WidthM, p.DepthM())
	top := f.DepthM
	if top >= zoneBottom {
		// Base at the profile bottom; fall back to the last layer.
		last := p.Layers[len(p.Layers)-1]
		top = last.FromDepthM
		zoneBottom = last.ToDepthM
	}

	moist, err := p.WeightedAverage(func(l soil.Layer) float64 { return l.GammaKNM3 }, top, zoneBottom)
	if err != nil {
		return 0, err
	}
	saturated, err := p.WeightedAverage(func(l soil.Layer) float64 {
		if l.GammaSatKNM3 > 0 {
			return l.GammaSatKNM3
		}
		return l.GammaKNM3
	}, top, zoneBottom)
	if err != nil {
		return 0, err
	}
	buoyant := saturated - soil.GammaWaterKNM3

	gwt := p.WaterTableM
	switch {
	case gwt <= f.DepthM:
		return buoyant, nil
	case gwt >= f.DepthM+f.WidthM:
		return moist, nil
	default:
		d := f.DepthM + f.WidthM - gwt
		return buoyant + d*(moist-buoyant)/f.WidthM, nil
	}
}

// SubgradeFromSettlement derives the modulus of subgrade reaction from an
// applied pressure and the settlement it produces. Returns a sentinel
// high value when the settlement is zero.
func SubgradeFromSettlement(pressureKPa, settlementM float64) float64 {
	if settlementM <= 0 {
		return math.Inf(1)
	}
	return pressureKPa / settlementM
}
