// Package settlement computes immediate (elastic) and consolidation
// settlement of a footing. Elastic settlement uses the Boussinesq
// influence factor with the Bowles embedment reduction table;
// consolidation settlement integrates a strain law over every
// compressible layer inside the influence zone with a fixed step count,
// so repeated runs are bit-identical. Layers with a compression index
// use the Cc/Cr logarithmic law; layers carrying only a coefficient of
// volume compressibility use the linear mv law.
package settlement

import (
	"Stratum/internal/soil"
)

const (
	MethodElastic         = "boussinesq-elastic"
	MethodConsolidation   = "compression-index"
	MethodConsolidationMv = "volume-compressibility"
)

// WarningNoCompressibleLayer flags an elastic-only result: the profile
// has no cohesive layer with a compression index inside the influence
// zone. Non-fatal by design.
const WarningNoCompressibleLayer = "no compressible layer in the influence zone; consolidation settlement omitted"

type Input struct {
	Layers      []soil.Layer    `json:"layers"`
	WaterTableM float64         `json:"water_table_m"`
	Foundation  soil.Foundation `json:"foundation"`
	Config      soil.Config     `json:"config"`
}

// LayerSettlement is the contribution of one stratum.
type LayerSettlement struct {
	FromDepthM     float64 `json:"from_depth_m"`
	ToDepthM       float64 `json:"to_depth_m"`
	ElasticM       float64 `json:"elastic_m"`
	ConsolidationM float64 `json:"consolidation_m"`
}

type Result struct {
	Methods          []string          `json:"methods"`
	QNetKPa          float64           `json:"q_net_kpa"`
	ElasticM         float64           `json:"elastic_m"`
	ConsolidationM   float64           `json:"consolidation_m"`
	TotalM           float64           `json:"total_m"`
	PerLayer         []LayerSettlement `json:"per_layer"`
	SubgradeKNM3     float64           `json:"subgrade_coefficient_kn_m3"`
	IntegrationSteps int               `json:"integration_steps"`
	Warnings         []string          `json:"warnings,omitempty"`
}

func Calculate(in Input) (Result, error) {
	profile, err := soil.NewProfile(in.Layers, in.WaterTableM)
	if err != nil {
		return Result{}, err
	}
	return Compute(profile, in.Foundation, in.Config)
}

// Compute runs both settlement components over a read-only profile. The
// footing is oriented internally so B <= L.
func Compute(p *soil.Profile, f soil.Foundation, cfg soil.Config) (Result, error) {
	cfg = cfg.WithDefaults()
	if err := f.Validate(p); err != nil {
		return Result{}, err
	}
	if f.WidthM > f.LengthM {
		f.WidthM, f.LengthM = f.LengthM, f.WidthM
	}

	baseStress, err := p.TotalStressAt(f.DepthM)
	if err != nil {
		return Result{}, err
	}
	qNet := f.PressureKPa - baseStress
	if qNet < 0 {
		qNet = 0
	}

	res := Result{
		Methods:          []string{MethodElastic},
		QNetKPa:          qNet,
		IntegrationSteps: cfg.IntegrationSteps,
	}

	perLayer, elasticTotal, err := elastic(p, f, qNet)
	if err != nil {
		return Result{}, err
	}
	res.ElasticM = elasticTotal

	consTotal, ccUsed, mvUsed := consolidation(p, f, qNet, cfg.IntegrationSteps, perLayer)
	if ccUsed {
		res.Methods = append(res.Methods, MethodConsolidation)
	}
	if mvUsed {
		res.Methods = append(res.Methods, MethodConsolidationMv)
	}
	if ccUsed || mvUsed {
		res.ConsolidationM = consTotal
	} else {
		res.Warnings = append(res.Warnings, WarningNoCompressibleLayer)
	}

	res.PerLayer = perLayer
	res.TotalM = res.ElasticM + res.ConsolidationM
	if res.TotalM > 0 {
		res.SubgradeKNM3 = f.PressureKPa / res.TotalM
	}
	return res, nil
}
