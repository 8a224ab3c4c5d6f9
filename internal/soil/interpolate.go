package soil

import (
	"fmt"
	"math"
)

// GammaWaterKNM3 is the unit weight of water.
const GammaWaterKNM3 = 9.81

// EffectiveStress is the vertical stress state at one depth.
type EffectiveStress struct {
	TotalKPa     float64 `json:"total_kpa"`
	PoreKPa      float64 `json:"pore_kpa"`
	EffectiveKPa float64 `json:"effective_kpa"`
}

// LayerAt returns the layer governing the given depth. A depth exactly at
// an internal layer boundary belongs to the layer below it; the profile
// bottom belongs to the last layer.
func (p *Profile) LayerAt(depth float64) (Layer, error) {
	if err := p.checkDepth(depth); err != nil {
		return Layer{}, err
	}
	for _, l := range p.Layers {
		if depth >= l.FromDepthM && depth < l.ToDepthM {
			return l, nil
		}
	}
	return p.Layers[len(p.Layers)-1], nil
}

// TotalStressAt walks the layers in depth order and accumulates overburden
// stress, switching to the saturated unit weight below the water table. The
// last contributing layer is taken at partial thickness.
func (p *Profile) TotalStressAt(depth float64) (float64, error) {
	if err := p.checkDepth(depth); err != nil {
		return 0, err
	}
	stress := 0.0
	for _, l := range p.Layers {
		bottom := math.Min(l.ToDepthM, depth)
		if bottom <= l.FromDepthM {
			break
		}
		top := l.FromDepthM
		switch gwt := p.WaterTableM; {
		case gwt >= bottom:
			stress += l.GammaKNM3 * (bottom - top)
		case gwt <= top:
			stress += l.saturatedGamma() * (bottom - top)
		default:
			stress += l.GammaKNM3*(gwt-top) + l.saturatedGamma()*(bottom-gwt)
		}
	}
	return stress, nil
}

// EffectiveStressAt subtracts hydrostatic pore pressure from the total
// overburden stress. Above the water table effective equals total.
func (p *Profile) EffectiveStressAt(depth float64) (EffectiveStress, error) {
	total, err := p.TotalStressAt(depth)
	if err != nil {
		return EffectiveStress{}, err
	}
	pore := 0.0
	if depth > p.WaterTableM {
		pore = (depth - p.WaterTableM) * GammaWaterKNM3
	}
	return EffectiveStress{
		TotalKPa:     total,
		PoreKPa:      pore,
		EffectiveKPa: total - pore,
	}, nil
}

// WeightedAverage integrates a per-layer property over [topDepth,
// bottomDepth], weighting each layer by its overlap with the interval.
// Partial layers contribute in proportion to the overlap length. This is
// the shared primitive behind the mixed-soil blend, settlement and
// liquefaction depth averaging.
func (p *Profile) WeightedAverage(property func(Layer) float64, topDepth, bottomDepth float64) (float64, error) {
	if topDepth >= bottomDepth {
		return 0, fmt.Errorf("%w: averaging interval %.2f–%.2f m is empty", ErrInvalidInput, topDepth, bottomDepth)
	}
	if err := p.checkDepth(topDepth); err != nil {
		return 0, err
	}
	if err := p.checkDepth(bottomDepth); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, l := range p.Layers {
		overlap := math.Min(l.ToDepthM, bottomDepth) - math.Max(l.FromDepthM, topDepth)
		if overlap <= 0 {
			continue
		}
		sum += property(l) * overlap
	}
	return sum / (bottomDepth - topDepth), nil
}

// Interp1D linearly interpolates y(x) over sorted breakpoints, clamping
// outside the table range. xs and ys must have equal length.
func Interp1D(xs, ys []float64, x float64) float64 {
	if len(xs) != len(ys) || len(xs) == 0 {
		panic("soil: interpolation tables must have equal, non-zero length")
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}
	for i := 0; i < len(xs)-1; i++ {
		if x >= xs[i] && x <= xs[i+1] {
			return ys[i] + (ys[i+1]-ys[i])*(x-xs[i])/(xs[i+1]-xs[i])
		}
	}
	return ys[len(ys)-1]
}
