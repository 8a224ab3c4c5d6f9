package settlement

import (
	"fmt"
	"math"

	"Stratum/internal/soil"
)

// Elasticity modulus correlations used when a layer carries no measured
// modulus. Granular: E = 500 (N60 + 15) kPa; cohesive: E = 300 cu
// (Bowles-range correlations).
const (
	granularModulusSlope  = 500.0
	granularModulusOffset = 15.0
	cohesiveModulusFactor = 300.0
)

const defaultPoissonsRatio = 0.3

// layerModulus resolves E and nu for a layer, falling back to the
// correlations above.
func layerModulus(l soil.Layer) (e, nu float64, err error) {
	nu = l.PoissonsRatio
	if nu <= 0 {
		nu = defaultPoissonsRatio
	}
	if l.ElasticModulusKPa > 0 {
		return l.ElasticModulusKPa, nu, nil
	}
	switch l.Class {
	case soil.ClassGranular, soil.ClassMixed:
		if l.SPTBlowCount > 0 {
			return granularModulusSlope * (l.SPTBlowCount + granularModulusOffset), nu, nil
		}
	case soil.ClassCohesive:
		if l.CohesionKPa > 0 {
			return cohesiveModulusFactor * l.CohesionKPa, nu, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: layer %.2f–%.2f m has neither elastic modulus nor a parameter to correlate it from",
		soil.ErrIncompleteInput, l.FromDepthM, l.ToDepthM)
}

// influenceIp computes the Boussinesq influence factor for settlement of
// a flexible rectangular area over a layer of finite depth h below the
// base (Bowles 1996).
func influenceIp(h, b, l, nu float64) float64 {
	m := l / b
	n := 2 * h / b

	m2 := m * m
	n2 := n * n

	a0 := m * math.Log((1+math.Sqrt(1+m2))*math.Sqrt(m2+n2)/(m*(1+math.Sqrt(1+m2+n2))))
	a1 := math.Log((m + math.Sqrt(1+m2)) * math.Sqrt(1+n2) / (m + math.Sqrt(1+m2+n2)))
	a2 := m / (n * math.Sqrt(1+m2+n2))

	f1 := (a0 + a1) / math.Pi
	f2 := 0.5 * (n / math.Pi) * math.Atan(a2)

	return f1 + (1-2*nu)/(1-nu)*f2
}

// layerElasticSettlement evaluates the settlement contribution of the
// soil column from the base down to depth h below it, in meters:
// s = 2 qnet B Ip If (1 - nu^2) / E.
func layerElasticSettlement(h, nu, e, l, b, df, qNet float64) float64 {
	ip := influenceIp(h, b, l, nu)
	rf := reductionFactor(nu, df/b, l/b)
	return 2 * qNet * b * ip * rf * (1 - nu*nu) / e
}

// elastic computes immediate settlement layer by layer: each layer's
// share is the settlement of the column down to its bottom minus the
// column down to its top, evaluated with that layer's stiffness.
func elastic(p *soil.Profile, f soil.Foundation, qNet float64) ([]LayerSettlement, float64, error) {
	var perLayer []LayerSettlement
	total := 0.0

	for _, l := range p.Layers {
		if l.ToDepthM <= f.DepthM {
			perLayer = append(perLayer, LayerSettlement{FromDepthM: l.FromDepthM, ToDepthM: l.ToDepthM})
			continue
		}
		e, nu, err := layerModulus(l)
		if err != nil {
			return nil, 0, err
		}

		hBottom := l.ToDepthM - f.DepthM
		sBottom := layerElasticSettlement(hBottom, nu, e, f.LengthM, f.WidthM, f.DepthM, qNet)

		s := sBottom
		if hTop := l.FromDepthM - f.DepthM; hTop > 0 {
			s -= layerElasticSettlement(hTop, nu, e, f.LengthM, f.WidthM, f.DepthM, qNet)
		}
		if s < 0 {
			s = 0
		}
		perLayer = append(perLayer, LayerSettlement{
			FromDepthM: l.FromDepthM,
			ToDepthM:   l.ToDepthM,
			ElasticM:   s,
		})
		total += s
	}
	return perLayer, total, nil
}
