package liquefaction

import "math"

// stressReduction is the depth-dependent rd coefficient of the
// simplified procedure (Liao & Whitman piecewise fit).
func stressReduction(depth float64) float64 {
	switch {
	case depth <= 9.15:
		return 1.0 - 0.00765*depth
	case depth < 23.0:
		return 1.174 - 0.0267*depth
	case depth < 30.0:
		return 0.744 - 0.008*depth
	default:
		return 0.5
	}
}

// cyclicStressRatio: CSR = 0.65 a_max (sigma_v / sigma'_v) rd.
func cyclicStressRatio(pga, totalKPa, effectiveKPa, rd float64) float64 {
	return 0.65 * pga * (totalKPa / effectiveKPa) * rd
}

// cyclicResistanceRatio for a magnitude-7.5 event from the clean-sand
// corrected blow count (Youd et al. 2001 fit). The caller screens out
// N1_60f >= 34, where the curve diverges.
func cyclicResistanceRatio(n160f float64) float64 {
	return 1.0/(34.0-n160f) + n160f/135.0 + 50.0/math.Pow(10.0*n160f+45.0, 2) - 1.0/200.0
}

// magnitudeScalingFactor: MSF = 10^2.24 / Mw^2.56.
func magnitudeScalingFactor(mw float64) float64 {
	return math.Pow(10, 2.24) / math.Pow(mw, 2.56)
}

// finesCorrected maps N1_60 to the clean-sand equivalent N1_60f using
// the fines-content correction of the simplified procedure.
func finesCorrected(n160, finesPct float64) float64 {
	var alpha, beta float64
	switch {
	case finesPct <= 5:
		alpha, beta = 0, 1
	case finesPct < 35:
		alpha = math.Exp(1.76 - 190/(finesPct*finesPct))
		beta = 0.99 + math.Pow(finesPct, 1.5)/1000
	default:
		alpha, beta = 5, 1.2
	}
	return alpha + beta*n160
}
