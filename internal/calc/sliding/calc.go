// Package sliding checks a footing against horizontal sliding: base
// friction (or undrained adhesion below the water table) plus a share of
// the passive wedge resistance on the embedded faces, with the usual
// partial factors on each component.
package sliding

import (
	"fmt"
	"math"

	"Stratum/internal/soil"
)

const Method = "limit-equilibrium-sliding"

// Partial factors on base resistance and passive resistance, and the
// fraction of the factored passive wedge allowed to act.
const (
	baseResistanceFactor    = 1.1
	passiveResistanceFactor = 1.4
	passiveShare            = 0.3
)

type Input struct {
	Layers      []soil.Layer    `json:"layers"`
	WaterTableM float64         `json:"water_table_m"`
	Foundation  soil.Foundation `json:"foundation"`
	Config      soil.Config     `json:"config"`
}

type Result struct {
	Method string `json:"method"`

	VerticalLoadKN float64 `json:"vertical_load_kn"`
	Kp             float64 `json:"kp"`
	BaseKN         float64 `json:"base_resistance_kn"`
	PassiveXKN     float64 `json:"passive_x_kn"`
	PassiveYKN     float64 `json:"passive_y_kn"`
	ResistanceXKN  float64 `json:"resistance_x_kn"`
	ResistanceYKN  float64 `json:"resistance_y_kn"`
	LoadXKN        float64 `json:"load_x_kn"`
	LoadYKN        float64 `json:"load_y_kn"`
	IsSafeX        bool    `json:"is_safe_x"`
	IsSafeY        bool    `json:"is_safe_y"`

	Warnings []string `json:"warnings,omitempty"`
}

func Calculate(in Input) (Result, error) {
	profile, err := soil.NewProfile(in.Layers, in.WaterTableM)
	if err != nil {
		return Result{}, err
	}
	return Compute(profile, in.Foundation, in.Config)
}

// Compute evaluates sliding resistance in both plan axes.
func Compute(p *soil.Profile, f soil.Foundation, _ soil.Config) (Result, error) {
	if err := f.Validate(p); err != nil {
		return Result{}, err
	}

	layer, err := p.LayerAt(f.DepthM)
	if err != nil {
		return Result{}, err
	}

	submergedBase := p.WaterTableM <= f.DepthM
	gamma := layer.GammaKNM3
	if submergedBase {
		gamma = layer.GammaSatKNM3
		if gamma <= 0 {
			gamma = layer.GammaKNM3
		}
		gamma -= soil.GammaWaterKNM3
	}

	res := Result{
		Method:         Method,
		VerticalLoadKN: f.VerticalLoadKN(),
		LoadXKN:        f.HorizontalLoadXKN,
		LoadYKN:        f.HorizontalLoadYKN,
	}

	phi := layer.FrictionAngleDeg
	res.Kp = math.Pow(math.Tan((45+phi/2)*math.Pi/180), 2)

	if submergedBase {
		// Undrained base: adhesion over the contact area.
		if layer.CohesionKPa <= 0 {
			return Result{}, fmt.Errorf("%w: submerged base at %.2f m needs undrained shear strength for the sliding check",
				soil.ErrIncompleteInput, f.DepthM)
		}
		res.BaseKN = f.WidthM * f.LengthM * layer.CohesionKPa / baseResistanceFactor
	} else {
		if f.SurfaceFriction <= 0 {
			return Result{}, fmt.Errorf("%w: surface friction coefficient required for the sliding check",
				soil.ErrIncompleteInput)
		}
		res.BaseKN = res.VerticalLoadKN * f.SurfaceFriction / baseResistanceFactor
	}

	res.PassiveXKN = f.WidthM * 0.5 * f.DepthM * f.DepthM * gamma * res.Kp
	res.PassiveYKN = f.LengthM * 0.5 * f.DepthM * f.DepthM * gamma * res.Kp

	res.ResistanceXKN = res.BaseKN + passiveShare*res.PassiveXKN/passiveResistanceFactor
	res.ResistanceYKN = res.BaseKN + passiveShare*res.PassiveYKN/passiveResistanceFactor

	res.IsSafeX = f.HorizontalLoadXKN <= res.ResistanceXKN
	res.IsSafeY = f.HorizontalLoadYKN <= res.ResistanceYKN

	if f.DepthM == 0 {
		res.Warnings = append(res.Warnings, "surface footing: no passive resistance, base friction only")
	}
	return res, nil
}
