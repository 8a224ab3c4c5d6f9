// Package soil holds the shared subsurface data model: layered soil
// profiles, foundation geometry and the depth-interpolation primitives
// every calculator builds on. A Profile is constructed once from parsed
// borehole data and is read-only afterwards, so it may be shared across
// concurrent calculations.
package soil

import "fmt"

// Class tags a layer with the behaviour family that selects the
// calculation method for it.
type Class string

const (
	ClassCohesive Class = "cohesive"
	ClassGranular Class = "granular"
	ClassMixed    Class = "mixed"
)

// Valid reports whether the class is one the calculators know.
func (c Class) Valid() bool {
	switch c {
	case ClassCohesive, ClassGranular, ClassMixed:
		return true
	}
	return false
}

// Layer is a single stratum of the borehole log. Depths are measured from
// ground surface, positive downward. Strength parameters are effective
// values for granular soils and undrained values for cohesive soils;
// compressibility and in-situ test fields are optional (zero means
// "not measured").
type Layer struct {
	FromDepthM   float64 `json:"from_depth_m"`
	ToDepthM     float64 `json:"to_depth_m"`
	Class        Class   `json:"soil_class"`
	GammaKNM3    float64 `json:"gamma_kn_m3"`     // moist unit weight above the water table
	GammaSatKNM3 float64 `json:"gamma_sat_kn_m3"` // below the water table; falls back to GammaKNM3

	CohesionKPa      float64 `json:"cohesion_kpa"`
	FrictionAngleDeg float64 `json:"friction_angle_deg"`

	ElasticModulusKPa float64 `json:"elastic_modulus_kpa,omitempty"`
	PoissonsRatio     float64 `json:"poissons_ratio,omitempty"`

	VoidRatio           float64 `json:"void_ratio,omitempty"`
	CompressionIndex    float64 `json:"compression_index,omitempty"`
	RecompressionIndex  float64 `json:"recompression_index,omitempty"`
	PreconsolidationKPa float64 `json:"preconsolidation_kpa,omitempty"`
	MvPerKPa            float64 `json:"mv_per_kpa,omitempty"` // coefficient of volume compressibility

	SPTBlowCount       float64 `json:"spt_n60,omitempty"`
	FinesContentPct    float64 `json:"fines_content_pct,omitempty"`
	PlasticityIndexPct float64 `json:"plasticity_index_pct,omitempty"`

	// Index properties for the swelling potential check.
	DryGammaKNM3    float64 `json:"dry_gamma_kn_m3,omitempty"`
	WaterContentPct float64 `json:"water_content_pct,omitempty"`
	LiquidLimitPct  float64 `json:"liquid_limit_pct,omitempty"`
	PlasticLimitPct float64 `json:"plastic_limit_pct,omitempty"`
}

// ThicknessM is the layer height in meters.
func (l Layer) ThicknessM() float64 {
	return l.ToDepthM - l.FromDepthM
}

// MidDepthM is the depth of the layer center.
func (l Layer) MidDepthM() float64 {
	return (l.FromDepthM + l.ToDepthM) / 2
}

// Compressible reports whether the layer takes part in consolidation
// settlement: cohesive with a measured compression index or a coefficient
// of volume compressibility.
func (l Layer) Compressible() bool {
	return l.Class == ClassCohesive && (l.CompressionIndex > 0 || l.MvPerKPa > 0)
}

// saturatedGamma is the unit weight used below the water table.
func (l Layer) saturatedGamma() float64 {
	if l.GammaSatKNM3 > 0 {
		return l.GammaSatKNM3
	}
	return l.GammaKNM3
}

// Profile is an ordered, contiguous stack of layers together with the
// groundwater table depth. Construct it with NewProfile; do not mutate
// Layers afterwards.
type Profile struct {
	Layers      []Layer `json:"layers"`
	WaterTableM float64 `json:"water_table_m"`
}

// NewProfile validates the stratigraphy and returns an immutable profile.
// Layers must be ordered by depth, contiguous and of positive thickness;
// every layer needs a recognized class and a positive unit weight.
func NewProfile(layers []Layer, waterTableM float64) (*Profile, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: profile must contain at least one layer", ErrInvalidInput)
	}
	if waterTableM < 0 {
		return nil, fmt.Errorf("%w: water table depth %.2f m is negative", ErrInvalidInput, waterTableM)
	}
	prev := 0.0
	for i, l := range layers {
		if l.FromDepthM != prev {
			return nil, fmt.Errorf("%w: layer %d starts at %.2f m, expected %.2f m (layers must be contiguous)",
				ErrInvalidInput, i, l.FromDepthM, prev)
		}
		if l.ToDepthM <= l.FromDepthM {
			return nil, fmt.Errorf("%w: layer %d has non-positive thickness (%.2f–%.2f m)",
				ErrInvalidInput, i, l.FromDepthM, l.ToDepthM)
		}
		if !l.Class.Valid() {
			return nil, fmt.Errorf("%w: layer %d has class %q", ErrUnsupportedSoilClass, i, l.Class)
		}
		if l.GammaKNM3 <= 0 {
			return nil, fmt.Errorf("%w: layer %d has unit weight %.2f kN/m³", ErrInvalidInput, i, l.GammaKNM3)
		}
		prev = l.ToDepthM
	}
	return &Profile{Layers: layers, WaterTableM: waterTableM}, nil
}

// DepthM is the total profile extent (bottom of the last layer).
func (p *Profile) DepthM() float64 {
	return p.Layers[len(p.Layers)-1].ToDepthM
}

func (p *Profile) checkDepth(depth float64) error {
	if depth < 0 {
		return fmt.Errorf("%w: depth %.2f m is negative", ErrInvalidInput, depth)
	}
	if depth > p.DepthM() {
		return fmt.Errorf("%w: depth %.2f m exceeds profile extent %.2f m", ErrInvalidInput, depth, p.DepthM())
	}
	return nil
}
