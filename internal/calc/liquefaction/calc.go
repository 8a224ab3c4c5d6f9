// Package liquefaction screens a soil profile for liquefaction
// susceptibility with the simplified Seed–Idriss SPT procedure: cyclic
// stress ratio from the design ground motion against cyclic resistance
// from corrected blow counts, layer by layer in depth order. Cohesive
// layers are reported non-susceptible by definition of the method.
package liquefaction

import (
	"fmt"
	"math"

	"Stratum/internal/soil"
)

const Method = "seed-idriss-spt"

// Screening limits from the simplified procedure: layers this plastic or
// this dense do not liquefy and are not rated.
const (
	screenPlasticityIndex = 12.0
	screenN160            = 30.0
	screenN160F           = 34.0
)

// minEffectiveKPa floors the effective stress entering the overburden
// correction and CSR. Near the surface with the water table at ground
// level the computed value can reach zero or below; the floor keeps the
// ratios finite.
const minEffectiveKPa = 1.0

// Seismic is the design ground motion.
type Seismic struct {
	PGA        float64 `json:"pga_g"`       // peak ground acceleration in g
	MagnitudeW float64 `json:"magnitude_w"` // moment magnitude
}

type Input struct {
	Layers      []soil.Layer `json:"layers"`
	WaterTableM float64      `json:"water_table_m"`
	Seismic     Seismic      `json:"seismic"`
	Config      soil.Config  `json:"config"`
}

// LayerVerdict is the per-stratum outcome. Screened layers carry the
// reason and zero ratios; rated layers carry CSR, CRR and the factor of
// safety against liquefaction.
type LayerVerdict struct {
	FromDepthM float64    `json:"from_depth_m"`
	ToDepthM   float64    `json:"to_depth_m"`
	MidDepthM  float64    `json:"mid_depth_m"`
	Class      soil.Class `json:"soil_class"`

	TotalKPa     float64 `json:"total_kpa"`
	EffectiveKPa float64 `json:"effective_kpa"`
	Rd           float64 `json:"rd"`

	N160  float64 `json:"n1_60,omitempty"`
	N160F float64 `json:"n1_60f,omitempty"`
	CSR   float64 `json:"csr,omitempty"`
	CRR75 float64 `json:"crr_75,omitempty"`
	CRR   float64 `json:"crr,omitempty"`
	FS    float64 `json:"fs,omitempty"`

	Susceptible bool   `json:"susceptible"`
	Screened    string `json:"screened,omitempty"` // reason the layer was not rated
}

type Result struct {
	Method         string         `json:"method"`
	MSF            float64        `json:"msf"`
	Threshold      float64        `json:"threshold"`
	Layers         []LayerVerdict `json:"layers"`
	AnySusceptible bool           `json:"any_susceptible"`
}

func Calculate(in Input) (Result, error) {
	profile, err := soil.NewProfile(in.Layers, in.WaterTableM)
	if err != nil {
		return Result{}, err
	}
	return Analyze(profile, in.Seismic, in.Config)
}

// Analyze rates every layer of the profile. Pure function of its inputs:
// no state survives between calls and the verdict order is the profile
// layer order.
func Analyze(p *soil.Profile, seismic Seismic, cfg soil.Config) (Result, error) {
	cfg = cfg.WithDefaults()
	if seismic.PGA <= 0 {
		return Result{}, fmt.Errorf("%w: peak ground acceleration must be positive", soil.ErrInvalidInput)
	}
	if seismic.MagnitudeW <= 0 {
		return Result{}, fmt.Errorf("%w: moment magnitude must be positive", soil.ErrInvalidInput)
	}

	res := Result{
		Method:    Method,
		MSF:       magnitudeScalingFactor(seismic.MagnitudeW),
		Threshold: cfg.LiquefactionThreshold,
	}

	for _, l := range p.Layers {
		v, err := rateLayer(p, l, seismic, res.MSF, cfg.LiquefactionThreshold)
		if err != nil {
			return Result{}, err
		}
		if v.Susceptible {
			res.AnySusceptible = true
		}
		res.Layers = append(res.Layers, v)
	}
	return res, nil
}

func rateLayer(p *soil.Profile, l soil.Layer, seismic Seismic, msf, threshold float64) (LayerVerdict, error) {
	mid := l.MidDepthM()
	es, err := p.EffectiveStressAt(mid)
	if err != nil {
		return LayerVerdict{}, err
	}

	v := LayerVerdict{
		FromDepthM:   l.FromDepthM,
		ToDepthM:     l.ToDepthM,
		MidDepthM:    mid,
		Class:        l.Class,
		TotalKPa:     es.TotalKPa,
		EffectiveKPa: es.EffectiveKPa,
		Rd:           stressReduction(mid),
	}

	switch {
	case l.Class == soil.ClassCohesive:
		v.Screened = "cohesive layer (non-liquefiable by method definition)"
		return v, nil
	case mid <= p.WaterTableM:
		v.Screened = "above the water table"
		return v, nil
	case l.PlasticityIndexPct >= screenPlasticityIndex:
		v.Screened = fmt.Sprintf("plasticity index %.1f >= %.0f", l.PlasticityIndexPct, screenPlasticityIndex)
		return v, nil
	}

	if l.SPTBlowCount <= 0 {
		return LayerVerdict{}, fmt.Errorf("%w: granular layer %.2f–%.2f m below the water table has no SPT blow count",
			soil.ErrIncompleteInput, l.FromDepthM, l.ToDepthM)
	}

	eff := math.Max(es.EffectiveKPa, minEffectiveKPa)
	cn := math.Min(math.Sqrt(100/eff), 1.7)
	v.N160 = cn * l.SPTBlowCount
	v.N160F = finesCorrected(v.N160, l.FinesContentPct)

	if v.N160 >= screenN160 {
		v.Screened = fmt.Sprintf("N1_60 %.1f >= %.0f (too dense to liquefy)", v.N160, screenN160)
		return v, nil
	}
	if v.N160F >= screenN160F {
		v.Screened = fmt.Sprintf("N1_60f %.1f >= %.0f (too dense to liquefy)", v.N160F, screenN160F)
		return v, nil
	}

	v.CSR = cyclicStressRatio(seismic.PGA, es.TotalKPa, eff, v.Rd)
	v.CRR75 = cyclicResistanceRatio(v.N160F)
	v.CRR = v.CRR75 * msf
	v.FS = v.CRR / v.CSR
	v.Susceptible = v.FS < threshold
	return v, nil
}
