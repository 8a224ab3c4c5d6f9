// Package swelling checks expansive cohesive layers against the
// overburden plus foundation stress: the swelling pressure of each layer
// is estimated from index properties with the Kayabali-Yaldiz (2014)
// regression and compared with the confining stress at the layer center.
package swelling

import (
	"fmt"
	"math"

	"Stratum/internal/soil"
)

const Method = "kayabali-yaldiz-2014"

// Regression coefficients. The fit operates in t/m2 and t/m3; inputs and
// outputs here are kPa and kN/m3, converted at the boundary.
const (
	coefWaterContent = -3.08
	coefDryUnitWt    = 102.5
	coefLiquidLimit  = 0.635
	coefPlasticLimit = 4.24
	regressionOffset = -220.8

	tonPerM2ToKPa = 9.81
)

type Input struct {
	Layers      []soil.Layer    `json:"layers"`
	WaterTableM float64         `json:"water_table_m"`
	Foundation  soil.Foundation `json:"foundation"`
	Config      soil.Config     `json:"config"`
}

// LayerResult carries one layer's swelling verdict. Non-cohesive layers
// report zero swelling pressure and are always safe.
type LayerResult struct {
	FromDepthM float64    `json:"from_depth_m"`
	ToDepthM   float64    `json:"to_depth_m"`
	MidDepthM  float64    `json:"mid_depth_m"`
	Class      soil.Class `json:"soil_class"`

	EffectiveKPa        float64 `json:"effective_kpa"`
	DeltaKPa            float64 `json:"delta_kpa"`
	SwellingPressureKPa float64 `json:"swelling_pressure_kpa"`
	IsSafe              bool    `json:"is_safe"`
}

type Result struct {
	Method    string        `json:"method"`
	QNetKPa   float64       `json:"q_net_kpa"`
	Layers    []LayerResult `json:"layers"`
	AnyUnsafe bool          `json:"any_unsafe"`
}

func Calculate(in Input) (Result, error) {
	profile, err := soil.NewProfile(in.Layers, in.WaterTableM)
	if err != nil {
		return Result{}, err
	}
	return Compute(profile, in.Foundation, in.Config)
}

// Compute rates every layer below the foundation base. A layer is unsafe
// when its swelling pressure exceeds the effective stress plus the
// foundation stress increment at its center.
func Compute(p *soil.Profile, f soil.Foundation, _ soil.Config) (Result, error) {
	if err := f.Validate(p); err != nil {
		return Result{}, err
	}
	if f.DepthM <= 0 {
		return Result{}, fmt.Errorf("%w: swelling check needs an embedded foundation", soil.ErrInvalidInput)
	}

	baseStress, err := p.TotalStressAt(f.DepthM)
	if err != nil {
		return Result{}, err
	}
	qNet := f.PressureKPa - baseStress
	if qNet < 0 {
		qNet = 0
	}

	res := Result{Method: Method, QNetKPa: qNet}
	load := qNet * f.WidthM * f.LengthM

	for _, l := range p.Layers {
		lr := LayerResult{
			FromDepthM: l.FromDepthM,
			ToDepthM:   l.ToDepthM,
			MidDepthM:  l.MidDepthM(),
			Class:      l.Class,
			IsSafe:     true,
		}

		z := lr.MidDepthM
		if z >= f.DepthM {
			es, err := p.EffectiveStressAt(z)
			if err != nil {
				return Result{}, err
			}
			lr.EffectiveKPa = es.EffectiveKPa
			d := z - f.DepthM
			lr.DeltaKPa = load / ((f.WidthM + d) * (f.LengthM + d))
		}

		if l.Class == soil.ClassCohesive {
			sp, err := swellingPressure(l)
			if err != nil {
				return Result{}, err
			}
			lr.SwellingPressureKPa = sp
			lr.IsSafe = sp <= lr.EffectiveKPa+lr.DeltaKPa
		}

		if !lr.IsSafe {
			res.AnyUnsafe = true
		}
		res.Layers = append(res.Layers, lr)
	}
	return res, nil
}

// swellingPressure evaluates the regression for a cohesive layer, in
// kPa. A negative fit value means the layer does not swell.
func swellingPressure(l soil.Layer) (float64, error) {
	if l.DryGammaKNM3 <= 0 || l.WaterContentPct <= 0 || l.LiquidLimitPct <= 0 || l.PlasticLimitPct <= 0 {
		return 0, fmt.Errorf("%w: cohesive layer %.2f-%.2f m needs dry unit weight, water content and Atterberg limits for the swelling check",
			soil.ErrIncompleteInput, l.FromDepthM, l.ToDepthM)
	}
	sp := coefWaterContent*l.WaterContentPct +
		coefDryUnitWt*(l.DryGammaKNM3/tonPerM2ToKPa) +
		coefLiquidLimit*l.LiquidLimitPct +
		coefPlasticLimit*l.PlasticLimitPct +
		regressionOffset
	return math.Max(sp, 0) * tonPerM2ToKPa, nil
}
