package settlement

import (
	"math"

	"Stratum/internal/soil"
)

// influenceZoneWidths bounds consolidation to base + 2B unless the 10 %
// stress-increment criterion gives a shallower depth.
const influenceZoneWidths = 2.0

// deltaStress is the stress increment at depth z from a loaded B x L
// area, 2:1 spread below the base.
func deltaStress(qNet, b, l, df, z float64) float64 {
	d := z - df
	if d < 0 {
		d = 0
	}
	return qNet * b * l / ((b + d) * (l + d))
}

// effectiveDepth finds, by bisection, the depth where the stress
// increment drops to 10 % of the in-situ effective stress. Returns the
// search upper bound when the criterion is not met within it.
func effectiveDepth(p *soil.Profile, f soil.Foundation, qNet float64) float64 {
	diff := func(z float64) float64 {
		es, err := p.EffectiveStressAt(z)
		if err != nil {
			return -1
		}
		return deltaStress(qNet, f.WidthM, f.LengthM, f.DepthM, z) - 0.1*es.EffectiveKPa
	}

	lo := f.DepthM
	hi := math.Min(f.DepthM+influenceZoneWidths*f.WidthM, p.DepthM())
	if diff(hi) > 0 {
		// Criterion not reached inside the zone; the whole zone settles.
		return hi
	}
	for i := 0; i < 100 && hi-lo > 1e-3; i++ {
		mid := (lo + hi) / 2
		if diff(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// strainAt evaluates the consolidation strain at depth z for a layer.
// Layers with a compression index use the Cc/Cr logarithmic law with
// preconsolidation branches; layers carrying only mv use the linear
// volume-compressibility law strain = mv * delta sigma.
func strainAt(l soil.Layer, sigma0, dSigma float64) float64 {
	if dSigma <= 0 {
		return 0
	}
	if l.CompressionIndex <= 0 && l.MvPerKPa > 0 {
		return l.MvPerKPa * dSigma
	}
	if sigma0 <= 0 {
		return 0
	}
	cc := l.CompressionIndex
	cr := l.RecompressionIndex
	e0 := l.VoidRatio
	gp := l.PreconsolidationKPa
	if gp <= 0 {
		gp = sigma0 // normally consolidated by default
	}
	final := sigma0 + dSigma

	var strain float64
	switch {
	case sigma0 >= gp:
		strain = cc / (1 + e0) * math.Log10(final/sigma0)
	case final <= gp:
		strain = cr / (1 + e0) * math.Log10(final/sigma0)
	default:
		strain = cr/(1+e0)*math.Log10(gp/sigma0) + cc/(1+e0)*math.Log10(final/gp)
	}
	return math.Max(strain, 0)
}

// consolidation integrates consolidation settlement over every
// compressible layer intersecting the influence zone with a fixed-step
// midpoint quadrature (steps per layer from Config), so results are
// deterministic and execution time bounded.
func consolidation(p *soil.Profile, f soil.Foundation, qNet float64, steps int, perLayer []LayerSettlement) (total float64, ccUsed, mvUsed bool) {
	zMax := effectiveDepth(p, f, qNet)
	zTop := f.DepthM

	for i, l := range p.Layers {
		if !l.Compressible() {
			continue
		}
		top := math.Max(l.FromDepthM, zTop)
		bottom := math.Min(l.ToDepthM, zMax)
		if bottom <= top {
			continue
		}
		if l.CompressionIndex > 0 {
			ccUsed = true
		} else {
			mvUsed = true
		}

		dz := (bottom - top) / float64(steps)
		s := 0.0
		for k := 0; k < steps; k++ {
			z := top + (float64(k)+0.5)*dz
			es, err := p.EffectiveStressAt(z)
			if err != nil {
				continue
			}
			dSigma := deltaStress(qNet, f.WidthM, f.LengthM, f.DepthM, z)
			s += strainAt(l, es.EffectiveKPa, dSigma) * dz
		}
		perLayer[i].ConsolidationM = s
		total += s
	}
	return total, ccUsed, mvUsed
}
