package bearing

import (
	"math"

	"Stratum/internal/soil"
)

// Factors are the classic bearing capacity factors derived from the
// friction angle.
type Factors struct {
	Nc float64 `json:"nc"`
	Nq float64 `json:"nq"`
	Ng float64 `json:"ng"`
}

// Corrections collects the multiplicative shape, depth and load
// inclination factors applied to each capacity term.
type Corrections struct {
	Sc float64 `json:"sc"`
	Sq float64 `json:"sq"`
	Sg float64 `json:"sg"`
	Dc float64 `json:"dc"`
	Dq float64 `json:"dq"`
	Dg float64 `json:"dg"`
	Ic float64 `json:"ic"`
	Iq float64 `json:"iq"`
	Ig float64 `json:"ig"`
}

// capacityFactors evaluates Nq, Nc and Ngamma from phi in degrees.
// Nq = e^(pi tan phi) tan^2(45 + phi/2); Nc = (Nq-1)/tan phi with the
// undrained limit 5.14 at phi = 0; Ngamma = 2 (Nq-1) tan phi (Vesic).
func capacityFactors(phiDeg float64) Factors {
	phi := phiDeg * math.Pi / 180
	tanPhi := math.Tan(phi)
	nq := math.Exp(math.Pi*tanPhi) * math.Pow(math.Tan(math.Pi/4+phi/2), 2)

	nc := 5.14
	if phiDeg != 0 {
		nc = (nq - 1) / tanPhi
	}
	ng := 2 * (nq - 1) * tanPhi

	return Factors{Nc: nc, Nq: nq, Ng: ng}
}

// shapeFactors for a rectangular base of width B and length L (B <= L).
func shapeFactors(f soil.Foundation, bc Factors, phiDeg float64) (sc, sq, sg float64) {
	wl := f.WidthM / f.LengthM

	if phiDeg == 0 {
		// Additive correction in the undrained form.
		sc = 0.2 * wl
	} else {
		sc = 1 + wl*(bc.Nq/bc.Nc)
	}
	sq = 1 + wl*math.Sin(phiDeg*math.Pi/180)
	sg = math.Max(1-0.4*wl, 0.6)
	return sc, sq, sg
}

// depthFactors for embedment Df. The Df/B ratio is tapered through atan
// once the footing is deeper than one width.
func depthFactors(f soil.Foundation, phiDeg float64) (dc, dq, dg float64) {
	db := f.DepthM / f.WidthM
	if db > 1 {
		db = math.Atan(db)
	}

	phi := phiDeg * math.Pi / 180
	if phiDeg == 0 {
		// Additive correction in the undrained form.
		dc = 0.4 * db
	} else {
		dc = 1 + 0.4*db
	}
	dq = 1 + 2*math.Tan(phi)*math.Pow(1-math.Sin(phi), 2)*db
	dg = 1
	return dc, dq, dg
}

// inclinationFactors per Coduto's formulation: the resultant horizontal
// load reduces each term through the exponent m derived from the aspect
// ratio. All factors are 1 when no horizontal load acts. For phi = 0 the
// cohesion factor is returned as an additive decrement instead.
func inclinationFactors(f soil.Foundation, bc Factors, phiDeg, cohesionKPa float64) (ic, iq, ig float64) {
	hb := f.HorizontalLoadXKN
	hl := f.HorizontalLoadYKN
	hi := hb + hl
	if hi == 0 {
		if phiDeg == 0 {
			return 0, 1, 1
		}
		return 1, 1, 1
	}

	w, l := f.WidthM, f.LengthM
	area := w * l
	v := f.VerticalLoadKN()
	ca := 0.75 * cohesionKPa

	mb := (2 + w/l) / (1 + w/l)
	ml := (2 + l/w) / (1 + l/w)
	m := math.Sqrt(mb*mb + ml*ml)
	if hb == 0 {
		m = ml
	} else if hl == 0 {
		m = mb
	}

	if phiDeg == 0 {
		ic = m * hi / (area * ca * bc.Nc)
		return math.Min(ic, 1), 1, 1
	}

	tanPhi := math.Tan(phiDeg * math.Pi / 180)
	base := 1 - hi/(v+area*ca/tanPhi)
	if base < 0 {
		base = 0
	}
	iq = math.Pow(base, m)
	ic = iq - (1-iq)/(bc.Nq-1)
	ig = math.Pow(base, m+1)
	return math.Max(ic, 0), iq, ig
}
